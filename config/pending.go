package config

const (
	BackendFile    = "file"
	BackendLevelDB = "leveldb"
	BackendMemory  = "memory"
)

// Pending selects where accepted transactions wait for the next block.
type Pending struct {
	Backend    string `json:"Backend"`
	FileName   string `json:"FileName"`
	LevelDBDir string `json:"LevelDBDir"`
}

func (p Pending) Valid() bool {
	switch p.Backend {
	case BackendFile, BackendLevelDB, BackendMemory:
		return true
	}
	return false
}
