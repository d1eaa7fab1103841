package pending

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio"
	"github.com/pkg/errors"
	"github.com/vitelabs/go-ledger/common"
	"github.com/vitelabs/go-ledger/ledger"
)

// maxRecordSize bounds one encoded record, newline included.
const maxRecordSize = 1024 * 1024

var ErrRecordTooLarge = errors.New("pending record too large")

// FileLog is a Queue backed by a JSON-lines file, one transaction record per
// line. It survives restarts; DrainAll swaps in an empty file atomically.
type FileLog struct {
	mu   sync.Mutex
	path string
}

func NewFileLog(path string) (*FileLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, errors.Wrap(err, "create pending log dir")
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDONLY, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "open pending log")
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &FileLog{path: path}, nil
}

func (l *FileLog) Path() string {
	return l.path
}

func (l *FileLog) Append(tx ledger.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	record, err := json.Marshal(tx)
	if err != nil {
		return errors.Wrap(err, "encode transaction")
	}
	if len(record)+1 > maxRecordSize {
		return errors.Wrapf(ErrRecordTooLarge, "%d bytes, max %d", len(record)+1, maxRecordSize)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return errors.Wrap(err, "open pending log")
	}
	if _, err := f.Write(append(record, '\n')); err != nil {
		f.Close()
		return errors.Wrap(err, "append pending log")
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return errors.Wrap(err, "sync pending log")
	}
	return f.Close()
}

func (l *FileLog) DrainAll() ([]ledger.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	txs, err := l.read()
	if err != nil {
		return nil, err
	}
	if err := renameio.WriteFile(l.path, nil, 0644); err != nil {
		return nil, errors.Wrap(err, "clear pending log")
	}
	return txs, nil
}

func (l *FileLog) read() ([]ledger.Transaction, error) {
	f, err := os.Open(l.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "open pending log")
	}
	defer f.Close()

	var txs []ledger.Transaction
	rd := bufio.NewReader(f)
	for line := 1; ; line++ {
		raw, tooLong, err := common.ReadLine(rd, maxRecordSize-1)
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "read pending log")
		}
		if tooLong {
			log.Warn("skip oversized pending record", "file", l.path, "line", line, "max", maxRecordSize)
		} else if record := bytes.TrimSpace(raw); len(record) > 0 {
			if tx, ok := l.decode(record, line); ok {
				txs = append(txs, tx)
			}
		}
		if err == io.EOF {
			return txs, nil
		}
	}
}

func (l *FileLog) decode(record []byte, line int) (ledger.Transaction, bool) {
	var tx ledger.Transaction
	if err := json.Unmarshal(record, &tx); err != nil {
		log.Warn("skip undecodable pending record", "file", l.path, "line", line, "err", err)
		return tx, false
	}
	if err := tx.Validate(); err != nil {
		log.Warn("skip invalid pending record", "file", l.path, "line", line, "err", err)
		return tx, false
	}
	return tx, true
}

func (l *FileLog) Close() error {
	return nil
}
