package statements

import (
	"bytes"
	"context"
	"io"
	"sync"

	"stonkie-backend/internal/shared/storage/object"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
	reads   int
}

func newMemStore(objects map[string]string) *memStore {
	m := &memStore{objects: map[string][]byte{}}
	for k, v := range objects {
		m.objects[k] = []byte(v)
	}
	return m
}

func (m *memStore) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.objects[key]
	return ok, nil
}

func (m *memStore) Read(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	if m.err != nil {
		return nil, m.err
	}
	data, ok := m.objects[key]
	if !ok {
		return nil, object.ErrNotFound
	}
	return data, nil
}

func (m *memStore) Write(ctx context.Context, key string, contentType string, r io.Reader) (int64, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, r)
	if err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = buf.Bytes()
	return n, nil
}

const incomeCSV = `,2023-12-31,2022-12-31
Total Revenue,"96,773,000,000","81,462,000,000"
Tax Effect Of Unusual Items,0,0
NET INCOME,14997000000,12556000000
Normalized EBITDA,,
Gross Margin Ratio,n/a,0.25
`
