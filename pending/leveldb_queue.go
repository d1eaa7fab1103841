package pending

import (
	"encoding/binary"
	"sync"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"github.com/vitelabs/go-ledger/ledger"
	"github.com/vmihailenco/msgpack"
)

var txKeyPrefix = []byte("tx.")

var syncWrite = &opt.WriteOptions{Sync: true}

// LevelDBQueue is a Queue stored in a LevelDB directory. Records are
// msgpack-encoded under big-endian sequence keys, so iteration order is
// append order.
type LevelDBQueue struct {
	mu  sync.Mutex
	db  *leveldb.DB
	seq uint64
}

func NewLevelDBQueue(dbDir string) (*LevelDBQueue, error) {
	db, err := leveldb.OpenFile(dbDir, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb %s", dbDir)
	}

	q := &LevelDBQueue{db: db}
	iter := db.NewIterator(util.BytesPrefix(txKeyPrefix), nil)
	if iter.Last() {
		q.seq = decodeSeq(iter.Key()) + 1
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "scan pending queue")
	}
	return q, nil
}

func (q *LevelDBQueue) Append(tx ledger.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	value, err := msgpack.Marshal(&tx)
	if err != nil {
		return errors.Wrap(err, "encode transaction")
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.db.Put(encodeSeq(q.seq), value, syncWrite); err != nil {
		return errors.Wrap(err, "put pending transaction")
	}
	q.seq++
	return nil
}

func (q *LevelDBQueue) DrainAll() ([]ledger.Transaction, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var txs []ledger.Transaction
	batch := new(leveldb.Batch)

	iter := q.db.NewIterator(util.BytesPrefix(txKeyPrefix), nil)
	for iter.Next() {
		key := append([]byte(nil), iter.Key()...)
		batch.Delete(key)

		var tx ledger.Transaction
		if err := msgpack.Unmarshal(iter.Value(), &tx); err != nil {
			log.Warn("skip undecodable pending record", "seq", decodeSeq(key), "err", err)
			continue
		}
		if err := tx.Validate(); err != nil {
			log.Warn("skip invalid pending record", "seq", decodeSeq(key), "err", err)
			continue
		}
		txs = append(txs, tx)
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "iterate pending queue")
	}

	if err := q.db.Write(batch, syncWrite); err != nil {
		return nil, errors.Wrap(err, "clear pending queue")
	}
	return txs, nil
}

func (q *LevelDBQueue) Close() error {
	return q.db.Close()
}

func encodeSeq(seq uint64) []byte {
	key := make([]byte, len(txKeyPrefix)+8)
	copy(key, txKeyPrefix)
	binary.BigEndian.PutUint64(key[len(txKeyPrefix):], seq)
	return key
}

func decodeSeq(key []byte) uint64 {
	if len(key) != len(txKeyPrefix)+8 {
		return 0
	}
	return binary.BigEndian.Uint64(key[len(txKeyPrefix):])
}
