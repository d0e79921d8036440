package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/pixil98/go-testutil"
)

// mockStoreSpec implements ValidatingSpec for testing FileStore
type mockStoreSpec struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

func (s *mockStoreSpec) Validate() error {
	return nil
}

func jsonAsset(t *testing.T, id string, spec *mockStoreSpec) *fstest.MapFile {
	t.Helper()
	data, err := json.Marshal(Asset[*mockStoreSpec]{Version: 1, Identifier: Identifier(id), Spec: spec})
	if err != nil {
		t.Fatalf("failed to marshal test asset: %v", err)
	}
	return &fstest.MapFile{Data: data}
}

func TestNewFileStore(t *testing.T) {
	store, err := NewFileStore[*mockStoreSpec](fstest.MapFS{}, ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "dir", store.dir, ".")
	testutil.AssertEqual(t, "records length", len(store.records), 0)
}

func TestNewFileStore_NonExistentDirectory(t *testing.T) {
	_, err := NewFileStore[*mockStoreSpec](fstest.MapFS{}, "skills")
	if err == nil {
		t.Error("expected error for non-existent directory")
	}
}

func TestNewFileStore_WithExistingAssets(t *testing.T) {
	fsys := fstest.MapFS{
		"items/item-1.json": jsonAsset(t, "item-1", &mockStoreSpec{Name: "First", Value: 1}),
		"items/item-2.json": jsonAsset(t, "item-2", &mockStoreSpec{Name: "Second", Value: 2}),
		"items/more.yaml": &fstest.MapFile{Data: []byte(`
version: 1
id: item_3
spec:
  name: Third
  value: 3
---
version: 1
id: item_4
spec:
  name: Fourth
  value: 4
`)},
	}

	store, err := NewFileStore[*mockStoreSpec](fsys, "items")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "record count", len(store.records), 4)

	item1 := store.Get("item-1")
	if item1 == nil {
		t.Fatal("expected item-1 to be loaded")
	}
	testutil.AssertEqual(t, "item-1 name", item1.Name, "First")
	testutil.AssertEqual(t, "item-1 value", item1.Value, 1)

	item4 := store.Get("item_4")
	if item4 == nil {
		t.Fatal("expected item_4 to be loaded")
	}
	testutil.AssertEqual(t, "item_4 name", item4.Name, "Fourth")
}

func TestNewFileStore_Errors(t *testing.T) {
	tests := map[string]struct {
		fsys   func(t *testing.T) fstest.MapFS
		expErr string
	}{
		"invalid json": {
			fsys: func(t *testing.T) fstest.MapFS {
				return fstest.MapFS{"bad.json": {Data: []byte(`{invalid json`)}}
			},
			expErr: "unmarshalling asset",
		},
		"invalid yaml": {
			fsys: func(t *testing.T) fstest.MapFS {
				return fstest.MapFS{"bad.yaml": {Data: []byte("version: [1\n")}}
			},
			expErr: "unmarshalling asset 1",
		},
		"unknown yaml field": {
			fsys: func(t *testing.T) fstest.MapFS {
				return fstest.MapFS{"bad.yml": {Data: []byte("version: 1\nid: x\nspec:\n  colour: red\n")}}
			},
			expErr: "unmarshalling asset 1",
		},
		"validation error": {
			fsys: func(t *testing.T) fstest.MapFS {
				data, _ := json.Marshal(Asset[*mockStoreSpec]{Identifier: "test", Spec: &mockStoreSpec{}})
				return fstest.MapFS{"test.json": {Data: data}}
			},
			expErr: "version must be set",
		},
		"duplicate key": {
			fsys: func(t *testing.T) fstest.MapFS {
				return fstest.MapFS{
					"file1.json":        jsonAsset(t, "duplicate-id", &mockStoreSpec{}),
					"subdir/file2.json": jsonAsset(t, "duplicate-id", &mockStoreSpec{}),
				}
			},
			expErr: "duplicate key detected: duplicate-id",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewFileStore[*mockStoreSpec](tt.fsys(t), ".")
			testutil.AssertErrorContains(t, err, tt.expErr)
		})
	}
}

func TestNewFileStore_IgnoresOtherFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"valid.json": jsonAsset(t, "valid", &mockStoreSpec{Name: "Valid", Value: 1}),
		"readme.txt": {Data: []byte("ignore me")},
		"notes.md":   {Data: []byte("# ignore me")},
	}

	store, err := NewFileStore[*mockStoreSpec](fsys, ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "record count", len(store.records), 1)
}

func TestNewFileStore_DirFS(t *testing.T) {
	tmpDir := t.TempDir()
	data, err := json.Marshal(Asset[*mockStoreSpec]{Version: 1, Identifier: "on-disk", Spec: &mockStoreSpec{Name: "Disk"}})
	if err != nil {
		t.Fatalf("failed to marshal test asset: %v", err)
	}
	err = os.WriteFile(filepath.Join(tmpDir, "on-disk.json"), data, 0644)
	if err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	store, err := NewFileStore[*mockStoreSpec](os.DirFS(tmpDir), ".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "name", store.Get("on-disk").Name, "Disk")
}

func TestFileStore_Get(t *testing.T) {
	store, err := NewFileStore[*mockStoreSpec](fstest.MapFS{}, ".")
	if err != nil {
		t.Fatalf("unexpected error creating store: %v", err)
	}
	store.records = map[string]*mockStoreSpec{
		"existing": {Name: "Test", Value: 42},
	}

	tests := map[string]struct {
		id       string
		expNil   bool
		expName  string
		expValue int
	}{
		"get existing record": {
			id:       "existing",
			expNil:   false,
			expName:  "Test",
			expValue: 42,
		},
		"get non-existing record": {
			id:     "nonexistent",
			expNil: true,
		},
		"get empty id": {
			id:     "",
			expNil: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			result := store.Get(tt.id)

			if tt.expNil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}
			} else {
				if result == nil {
					t.Errorf("expected non-nil result")
					return
				}
				testutil.AssertEqual(t, "name", result.Name, tt.expName)
				testutil.AssertEqual(t, "value", result.Value, tt.expValue)
			}
		})
	}
}

func TestFileStore_GetAll(t *testing.T) {
	tests := map[string]struct {
		records  map[string]*mockStoreSpec
		expCount int
	}{
		"empty records": {
			records:  map[string]*mockStoreSpec{},
			expCount: 0,
		},
		"single record": {
			records: map[string]*mockStoreSpec{
				"one": {Name: "One", Value: 1},
			},
			expCount: 1,
		},
		"multiple records": {
			records: map[string]*mockStoreSpec{
				"one":   {Name: "One", Value: 1},
				"two":   {Name: "Two", Value: 2},
				"three": {Name: "Three", Value: 3},
			},
			expCount: 3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			store, err := NewFileStore[*mockStoreSpec](fstest.MapFS{}, ".")
			if err != nil {
				t.Fatalf("unexpected error creating store: %v", err)
			}
			store.records = tt.records

			result := store.GetAll()

			testutil.AssertEqual(t, "count", len(result), tt.expCount)

			// Verify it's a copy, not the original
			for k := range result {
				delete(result, k)
				break
			}
			if len(store.records) != tt.expCount {
				t.Errorf("GetAll should return a copy, not the original map")
			}
		})
	}
}
