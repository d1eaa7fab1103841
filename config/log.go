package config

type Log struct {
	Level string `json:"Level"`
	// Dir is relative to the data dir unless absolute.
	Dir string `json:"Dir"`
}
