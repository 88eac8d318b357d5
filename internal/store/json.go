package store

import "encoding/json"

// readRecord decodes the record at key into T, returning fallback when the
// record is absent or its JSON is corrupt. Corruption is treated as absence,
// never as an error.
func readRecord[T any](r *Records, key string, fallback T) T {
	data, ok := r.Get(key)
	if !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback
	}
	return v
}

// writeRecord encodes v and replaces the record at key.
func writeRecord[T any](r *Records, key string, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.Set(key, data)
}
