package device

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultProcPath is the Linux input device listing.
const DefaultProcPath = "/proc/bus/input/devices"

// ProcLister reads joystick names from a /proc/bus/input/devices style file.
type ProcLister struct {
	Path string
}

// ListDevices implements Lister. A missing file yields no devices.
func (p ProcLister) ListDevices() ([]string, error) {
	path := p.Path
	if path == "" {
		path = DefaultProcPath
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open input devices: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only listing.
			_ = cerr
		}
	}()
	return parseInputDevices(file)
}

// parseInputDevices keeps only blocks with a jsN handler.
func parseInputDevices(r io.Reader) ([]string, error) {
	var (
		names    []string
		name     string
		joystick bool
	)
	flush := func() {
		if name != "" && joystick {
			names = append(names, name)
		}
		name = ""
		joystick = false
	}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			flush()
		case strings.HasPrefix(line, "N: Name="):
			name = strings.Trim(strings.TrimPrefix(line, "N: Name="), `"`)
		case strings.HasPrefix(line, "H: Handlers="):
			for _, handler := range strings.Fields(strings.TrimPrefix(line, "H: Handlers=")) {
				if strings.HasPrefix(handler, "js") {
					joystick = true
				}
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input devices: %w", err)
	}
	flush()
	return names, nil
}
