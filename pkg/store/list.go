package store

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
	"gopkg.in/yaml.v3"
	"src.cowl.sh/pkg/cowlist"
	. "src.cowl.sh/pkg/store/storedefs"
)

func init() {
	initDB["initialize saved list table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketList))
		return err
	}
}

// PutList saves the values of a list under the given name, replacing any list
// previously saved under the same name.
func (s *dbStore) PutList(name string, l *cowlist.List[string]) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketList))
		return b.Put([]byte(name), data)
	})
}

// GetList loads a saved list.
func (s *dbStore) GetList(name string) (*cowlist.List[string], error) {
	l := &cowlist.List[string]{}
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketList))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoList
		}
		if err := yaml.Unmarshal(v, l); err != nil {
			return fmt.Errorf("corrupt saved list %q: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// DelList deletes a saved list. It returns ErrNoList if there is no such list.
func (s *dbStore) DelList(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketList))
		if b.Get([]byte(name)) == nil {
			return ErrNoList
		}
		return b.Delete([]byte(name))
	})
}

// ListNames returns the names of all saved lists, in lexicographical order.
func (s *dbStore) ListNames() ([]string, error) {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketList)).ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	return names, err
}
