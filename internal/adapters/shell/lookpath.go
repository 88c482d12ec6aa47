package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// PathDirs extracts the PATH entries from "KEY=VALUE" environment entries.
// On Windows the key is matched case-insensitively.
func PathDirs(env []string) []string {
	for _, e := range env {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		if k == "PATH" || (runtime.GOOS == "windows" && strings.EqualFold(k, "PATH")) {
			return filepath.SplitList(v)
		}
	}
	return nil
}

// LookPath searches dirs, in order, for an executable named file.
// On Windows the PATHEXT extensions are tried when file has none.
func LookPath(file string, dirs []string) (string, error) {
	candidates := executableNames(file)

	if strings.ContainsAny(file, `/\`) {
		for _, c := range candidates {
			if err := findExecutable(c); err == nil {
				return c, nil
			}
		}
		return "", exec.ErrNotFound
	}

	for _, dir := range dirs {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		for _, c := range candidates {
			path := filepath.Join(dir, c)
			if err := findExecutable(path); err == nil {
				return path, nil
			}
		}
	}
	return "", exec.ErrNotFound
}

func executableNames(file string) []string {
	if runtime.GOOS != "windows" || filepath.Ext(file) != "" {
		return []string{file}
	}
	exts := os.Getenv("PATHEXT")
	if exts == "" {
		exts = ".com;.exe;.bat;.cmd"
	}
	names := make([]string, 0, 4)
	for _, ext := range strings.Split(strings.ToLower(exts), ";") {
		if ext != "" {
			names = append(names, file+ext)
		}
	}
	return names
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	m := d.Mode()
	if m.IsDir() {
		return os.ErrPermission
	}
	if runtime.GOOS == "windows" || m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
