package fsutil

import "os"

// WriteFile writes data to path and fixes its ownership under sudo.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	if err := os.WriteFile(path, data, perm); err != nil {
		return err
	}
	return FixOwnership(path)
}

// CreateFile writes data to a new file at path. It fails with an error
// matching fs.ErrExist if path already exists.
func CreateFile(path string, data []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return FixOwnership(path)
}

// MkdirAll creates path and its parents and fixes the ownership of path under sudo.
func MkdirAll(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return err
	}
	return FixOwnership(path)
}

// Touch creates path for appending if it does not exist yet, so write
// permission problems surface before anything is logged.
func Touch(path string, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = FixOwnership(path)
	return nil
}
