package survey

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"

	"surveyd/internal/models"
	"surveyd/internal/providers"
	"surveyd/internal/structures"
	"surveyd/internal/survey/interfaces"
)

// ErrJournalClosed is returned when an append is attempted before Open or
// after Close.
var ErrJournalClosed = errors.New("journal is not open")

const coldSegmentLayout = "20060102T150405"

// Journal is the append-only store: one self-describing JSON line per
// accepted record. Appends are serialized by a mutex and fsynced before
// success is reported, so a 201 response implies the record is durable.
// Existing entries are never rewritten, reordered or deleted; an oversized
// journal is rotated into an immutable compressed cold segment instead.
type Journal struct {
	path       string
	coldDir    string
	maxSize    int64
	compressor interfaces.CompressorInterface
	logger     providers.Logger

	mu    sync.Mutex
	file  *os.File
	size  int64
	count atomic.Int64
}

func NewJournal(conf *structures.Config, compressor interfaces.CompressorInterface, logger providers.Logger) interfaces.JournalInterface {
	return &Journal{
		path:       conf.Persistence.FilePath,
		coldDir:    conf.Persistence.ColdStorageDir,
		maxSize:    conf.Persistence.MaxFileSize,
		compressor: compressor,
		logger:     logger,
	}
}

// Open prepares the journal for appending. An unterminated tail left by an
// abrupt termination is sealed with a newline so it cannot corrupt the
// boundary of the next record; the partial line itself is ignored by readers.
func (j *Journal) Open() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file != nil {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("create journal dir: %w", err)
	}

	count, size, terminated, err := scanJournal(j.path)
	if err != nil {
		return fmt.Errorf("scan journal: %w", err)
	}

	file, err := os.OpenFile(j.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}

	if size > 0 && !terminated {
		j.logger.Warnf(providers.TypeApp, "Journal %s has an unterminated tail, sealing it", j.path)
		if _, err := file.Write([]byte("\n")); err != nil {
			file.Close()
			return fmt.Errorf("seal journal tail: %w", err)
		}
		size++
	}

	j.file = file
	j.size = size
	j.count.Store(count)
	j.logger.Infof(providers.TypeApp, "Journal opened: %s (%d records)", j.path, count)
	return nil
}

// Append durably persists one record. The line is written in a single write
// call under the mutex and fsynced before returning, so concurrent appends
// never interleave and a nil return guarantees durability.
func (j *Journal) Append(record *models.StoredSurveyRecord) error {
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	line = append(line, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return ErrJournalClosed
	}
	if _, err := j.file.Write(line); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("sync journal: %w", err)
	}

	j.size += int64(len(line))
	j.count.Inc()
	return nil
}

// Records reads back every parseable entry of the active journal in append
// order. Unparseable lines (a sealed partial tail) are skipped, not fatal.
func (j *Journal) Records() ([]*models.StoredSurveyRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	data, err := os.ReadFile(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read journal: %w", err)
	}

	var records []*models.StoredSurveyRecord
	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		rec := &models.StoredSurveyRecord{}
		if err := json.Unmarshal(line, rec); err != nil {
			j.logger.Warnf(providers.TypeApp, "Skipping unparseable journal line: %s", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// Count reports the number of records in the active journal.
func (j *Journal) Count() int64 {
	return j.count.Load()
}

func (j *Journal) Sync() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return nil
	}
	return j.file.Sync()
}

// RotateIfOversized moves the active journal into a compressed cold segment
// once it exceeds the configured size, then starts a fresh journal. Rotation
// relocates entries, it never drops them. Disabled when maxFileSize or the
// cold storage dir is unset.
func (j *Journal) RotateIfOversized() (bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.maxSize <= 0 || j.coldDir == "" || j.file == nil || j.size < j.maxSize {
		return false, nil
	}

	data, err := os.ReadFile(j.path)
	if err != nil {
		return false, fmt.Errorf("read journal for rotation: %w", err)
	}
	compressed, err := j.compressor.Compress(data)
	if err != nil {
		return false, fmt.Errorf("compress journal segment: %w", err)
	}

	segment := fmt.Sprintf("survey-%s.jsonl.zst", time.Now().UTC().Format(coldSegmentLayout))
	if err := writeColdSegment(j.coldDir, segment, compressed); err != nil {
		return false, err
	}

	// The segment is durable, safe to start over.
	if err := j.file.Close(); err != nil {
		j.file = nil
		return false, fmt.Errorf("close journal for rotation: %w", err)
	}
	file, err := os.OpenFile(j.path, os.O_CREATE|os.O_TRUNC|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		j.file = nil
		return false, fmt.Errorf("reopen journal after rotation: %w", err)
	}

	rotated := j.count.Load()
	j.file = file
	j.size = 0
	j.count.Store(0)
	j.logger.Infof(providers.TypeApp, "Rotated %d records into cold segment %s", rotated, segment)
	return true, nil
}

func (j *Journal) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.file == nil {
		return nil
	}
	if err := j.file.Sync(); err != nil {
		j.file.Close()
		j.file = nil
		return err
	}
	err := j.file.Close()
	j.file = nil
	return err
}

// writeColdSegment writes a segment atomically via tmp file and rename.
func writeColdSegment(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create cold storage dir: %w", err)
	}

	target := filepath.Join(dir, name)
	tmpFile := target + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, target)
}

// scanJournal counts the parseable entries of an existing journal and
// reports whether the file ends with a record terminator.
func scanJournal(path string) (count int64, size int64, terminated bool, err error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, 0, true, nil
		}
		return 0, 0, false, err
	}
	defer file.Close()

	terminated = true
	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadBytes('\n')
		size += int64(len(line))
		if len(line) > 0 {
			terminated = bytes.HasSuffix(line, []byte{'\n'})
			if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 && json.Valid(trimmed) {
				count++
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return 0, 0, false, readErr
		}
	}
	return count, size, terminated, nil
}
