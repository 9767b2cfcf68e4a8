package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata(t *testing.T) {
	rpt := Build(testCollection(), BuildOptions{Title: "Case 42"})
	rpt.GeneratedAt = time.Date(2026, 8, 24, 10, 30, 0, 0, time.UTC)

	meta := rpt.Metadata()
	assert.Equal(t, rpt.ID, meta.ReportID)
	assert.Equal(t, "Case 42", meta.Title)
	assert.Equal(t, "2026-08-24T10:30:00Z", meta.GeneratedAt)
	assert.Equal(t, "SignalForensics", meta.Generator)
	assert.Equal(t, 2, meta.Categories)
	assert.Equal(t, 2, meta.Tables)
}
