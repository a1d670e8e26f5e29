package scheduler

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strconv"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

// Workload represents a scheduling request
type Workload struct {
	Quantum   int       `json:"quantum" yaml:"quantum"`
	Processes []Process `json:"processes" yaml:"processes"`
}

// Validate checks quantum and processes
func (w *Workload) Validate() error {
	if w.Quantum <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantum, w.Quantum)
	}
	for i := range w.Processes {
		if err := w.Processes[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ParseWorkload parses the line format: a "n quantum" header followed by
// "name time" lines; blank lines are ignored. Every process line is taken,
// whatever count the header declares.
func ParseWorkload(text string) (*Workload, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	var header []string
	for scanner.Scan() {
		if header = strings.Fields(scanner.Text()); len(header) > 0 {
			break
		}
	}
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: expected \"n quantum\" header, got %q", ErrInvalidWorkload, strings.Join(header, " "))
	}
	count, err := strconv.Atoi(header[0])
	if err != nil || count < 0 {
		return nil, fmt.Errorf("%w: invalid process count %q", ErrInvalidWorkload, header[0])
	}
	quantum, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("%w: invalid quantum %q", ErrInvalidWorkload, header[1])
	}
	ret := &Workload{Quantum: quantum, Processes: make([]Process, 0, count)}
	line := 1
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected \"name time\", got %q", ErrInvalidWorkload, line, scanner.Text())
		}
		remaining, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid time %q", ErrInvalidWorkload, line, fields[1])
		}
		ret.Processes = append(ret.Processes, Process{Name: fields[0], Remaining: remaining})
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if len(ret.Processes) != count {
		log.Printf("workload header declares %d processes, got %d", count, len(ret.Processes))
	}
	if err = ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// DecodeWorkload decodes YAML (or JSON) workload
func DecodeWorkload(data []byte) (*Workload, error) {
	ret := &Workload{}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkload, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// LoadWorkload downloads workload from URL; .yaml, .yml and .json files are
// decoded as YAML, anything else is parsed as the line format.
func LoadWorkload(ctx context.Context, fs afs.Service, URL string, options ...storage.Option) (*Workload, error) {
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load workload %v: %w", URL, err)
	}
	switch strings.ToLower(path.Ext(URL)) {
	case ".yaml", ".yml", ".json":
		return DecodeWorkload(data)
	}
	return ParseWorkload(string(data))
}

// WriteCompletions writes "name elapsed" lines in completion order
func WriteCompletions(w io.Writer, processes []Process) error {
	buffer := bytes.Buffer{}
	for _, process := range processes {
		buffer.WriteString(process.Name)
		buffer.WriteByte(' ')
		buffer.WriteString(strconv.Itoa(process.Elapsed))
		buffer.WriteByte('\n')
	}
	_, err := w.Write(buffer.Bytes())
	return err
}
