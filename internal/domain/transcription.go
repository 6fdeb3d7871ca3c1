package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type Source string

const (
	SourceUpload Source = "upload"
	SourceInbox  Source = "inbox"
)

type Transcription struct {
	ID         uuid.UUID `db:"id"          json:"id"`
	Filename   string    `db:"filename"    json:"filename"`
	Source     Source    `db:"source"      json:"source"`
	Text       string    `db:"text"        json:"text"`
	Keywords   []string  `db:"keywords"    json:"keywords"`
	Timings    Timings   `db:"-"           json:"timings"`
	SizeBytes  int64     `db:"size_bytes"  json:"size_bytes"`
	ArchiveKey string    `db:"archive_key" json:"archive_key,omitempty"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
}

// Timings are stage durations in seconds, rounded to milliseconds.
type Timings struct {
	ConversionSec float64 `db:"conversion_sec" json:"conversion_sec"`
	ASRSec        float64 `db:"asr_sec"        json:"asr_sec"`
	KeywordSec    float64 `db:"keyword_sec"    json:"keyword_sec"`
	TotalSec      float64 `db:"total_sec"      json:"total_sec"`
}

func Seconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*1000) / 1000
}

// TranscribeResult is passed between inbox pipeline stages.
type TranscribeResult struct {
	Filename      string
	Transcription *Transcription // filled in case of a success
	Error         error          // filled in case of an error
}
