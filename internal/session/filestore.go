package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ibeloyar/chawp-vendor/internal/model"
)

const (
	identityFile = "session.json"
	filePerm     = 0o600
	dirPerm      = 0o700
)

// FileStore - сессия в JSON-файлах одного каталога
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	return &FileStore{dir: dir}, nil
}

func (f *FileStore) LoadIdentity() (*Identity, error) {
	var identity Identity
	found, err := f.readJSON(identityFile, &identity)
	if err != nil || !found {
		return nil, err
	}
	return &identity, nil
}

func (f *FileStore) SaveIdentity(identity Identity) error {
	return f.writeJSON(identityFile, identity)
}

func (f *FileStore) ClearIdentity() error {
	return f.remove(identityFile)
}

func (f *FileStore) LoadVendor(userID uuid.UUID) (*model.VendorProfile, error) {
	var vendor model.VendorProfile
	found, err := f.readJSON(vendorFile(userID), &vendor)
	if err != nil || !found {
		return nil, err
	}
	return &vendor, nil
}

func (f *FileStore) SaveVendor(userID uuid.UUID, vendor model.VendorProfile) error {
	return f.writeJSON(vendorFile(userID), vendor)
}

func (f *FileStore) ClearVendor(userID uuid.UUID) error {
	return f.remove(vendorFile(userID))
}

func vendorFile(userID uuid.UUID) string {
	return "vendor_" + userID.String() + ".json"
}

func (f *FileStore) readJSON(name string, v any) (bool, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("decode %s: %w", name, err)
	}
	return true, nil
}

// writeJSON пишет во временный файл и переименовывает, чтобы не оставить половину файла
func (f *FileStore) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	tmp, err := os.CreateTemp(f.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}

	if err := os.Rename(tmpName, filepath.Join(f.dir, name)); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (f *FileStore) remove(name string) error {
	err := os.Remove(filepath.Join(f.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}
