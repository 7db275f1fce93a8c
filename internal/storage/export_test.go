// ABOUTME: Tests for export, import, and backend migration.
// ABOUTME: Covers JSON, YAML, Markdown output and upsert-based imports.
package storage

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/harperreed/mood/internal/models"
	"gopkg.in/yaml.v3"
)

func seedStore(t *testing.T) *Store {
	t.Helper()
	store, _ := setupTestStore(t)
	seed := []models.MoodRecord{
		models.NewMoodRecord(mustDate(t, "2024-01-01"), models.MoodSad),
		models.NewMoodRecord(mustDate(t, "2024-03-01"), models.MoodSad),
		models.NewMoodRecord(mustDate(t, "2024-02-01"), models.MoodNeutral),
	}
	if err := store.Save(seed); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	return store
}

func TestExportJSON(t *testing.T) {
	store := seedStore(t)

	data, err := ExportJSON(store)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	var export ExportData
	if err := json.Unmarshal(data, &export); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if export.Tool != "mood" || export.Version != "1.0" {
		t.Errorf("unexpected header: %+v", export)
	}
	if len(export.Records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(export.Records))
	}
	if export.Records[0].Date.String() != "2024-03-01" {
		t.Errorf("expected newest record first, got %s", export.Records[0].Date)
	}
	if export.Summary == nil || export.Summary.MostFrequent != "üzgün" {
		t.Errorf("unexpected summary: %+v", export.Summary)
	}
}

func TestExportYAML(t *testing.T) {
	store := seedStore(t)

	data, err := ExportYAML(store)
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var doc struct {
		Tool   string                      `yaml:"tool"`
		Months map[string][]map[string]any `yaml:"months"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export is not valid YAML: %v", err)
	}
	if doc.Tool != "mood" {
		t.Errorf("Tool = %q", doc.Tool)
	}
	if len(doc.Months) != 3 {
		t.Errorf("expected 3 months, got %d", len(doc.Months))
	}
	if got := doc.Months["2024-02"][0]["mood"]; got != "normal" {
		t.Errorf("2024-02 mood = %v, want normal", got)
	}
}

func TestExportMarkdown(t *testing.T) {
	store := seedStore(t)

	md, err := ExportMarkdown(store, nil)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	for _, want := range []string{"# Mood Journal", "- Records: 3", "| 01.03.2024 | 😔 üzgün |", "Most frequent: 😔 üzgün"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	if strings.Index(md, "01.03.2024") > strings.Index(md, "01.01.2024") {
		t.Error("expected newest row first")
	}

	since := mustDate(t, "2024-02-15")
	md, err = ExportMarkdown(store, &since)
	if err != nil {
		t.Fatalf("ExportMarkdown with since failed: %v", err)
	}
	if !strings.Contains(md, "- Records: 1") || strings.Contains(md, "01.01.2024") {
		t.Errorf("since filter not applied:\n%s", md)
	}
}

func TestExportMarkdownEmpty(t *testing.T) {
	store, _ := setupTestStore(t)
	md, err := ExportMarkdown(store, nil)
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(md, "No records.") {
		t.Errorf("expected empty marker:\n%s", md)
	}
}

func TestImportJSONFromExport(t *testing.T) {
	src := seedStore(t)
	data, err := ExportJSON(src)
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	dst, _ := setupTestStore(t)
	_, _ = dst.Upsert(mustDate(t, "2024-01-01"), models.MoodVeryHappy)

	result, err := ImportJSON(dst, data)
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if result.Added != 2 || result.Updated != 1 {
		t.Errorf("ImportResult = %+v, want 2 added 1 updated", result)
	}

	again, err := ImportJSON(dst, data)
	if err != nil {
		t.Fatalf("second ImportJSON failed: %v", err)
	}
	if again.Added != 0 || again.Updated != 0 {
		t.Errorf("re-import changed data: %+v", again)
	}

	records, _ := dst.Load()
	if len(records) != 3 {
		t.Errorf("expected 3 records, got %d", len(records))
	}
}

func TestImportJSONFromPayload(t *testing.T) {
	store, _ := setupTestStore(t)
	payload := `[{"date":"2024-01-01","mood":"normal"},{"date":"2024-01-01","mood":"mutlu"}]`

	result, err := ImportJSON(store, []byte(payload))
	if err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}
	if result.Added != 1 || result.Updated != 1 {
		t.Errorf("ImportResult = %+v", result)
	}
	r, err := store.Get(mustDate(t, "2024-01-01"))
	if err != nil || r.Mood != models.MoodHappy {
		t.Errorf("Get = %+v, %v", r, err)
	}
}

func TestImportJSONRejectsUnknownMood(t *testing.T) {
	store, _ := setupTestStore(t)
	_, err := ImportJSON(store, []byte(`[{"date":"2024-01-01","mood":"ecstatic"}]`))
	if !errors.Is(err, models.ErrUnknownMood) {
		t.Errorf("expected ErrUnknownMood, got %v", err)
	}
	records, _ := store.Load()
	if len(records) != 0 {
		t.Errorf("failed import wrote records: %v", records)
	}
}

func TestImportJSONRejectsMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"missing date", `[{"mood":"mutlu"}]`, models.ErrMissingDate},
		{"missing mood", `[{"date":"2024-01-01"}]`, models.ErrUnknownMood},
		{"missing date in export", `{"version":"1.0","records":[{"date":"2024-01-01","mood":"normal"},{"mood":"mutlu"}]}`, models.ErrMissingDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, backend := setupTestStore(t)
			res, err := ImportJSON(store, []byte(tt.data))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ImportJSON err = %v, want %v (result %+v)", err, tt.wantErr, res)
			}
			if _, err := backend.Get(PayloadKey); !errors.Is(err, ErrNotFound) {
				t.Errorf("failed import wrote a payload: %v", err)
			}
		})
	}
}

func TestMigrateData(t *testing.T) {
	src := seedStore(t)
	dst := NewStore(setupTestDB(t))

	summary, err := MigrateData(src, dst)
	if err != nil {
		t.Fatalf("MigrateData failed: %v", err)
	}
	if summary.Source != 3 || summary.Added != 3 || summary.Updated != 0 {
		t.Errorf("summary = %+v", summary)
	}

	srcRecords, _ := src.Load()
	dstRecords, _ := dst.Load()
	if len(srcRecords) != len(dstRecords) {
		t.Fatalf("record count mismatch: %d vs %d", len(srcRecords), len(dstRecords))
	}
	for i := range srcRecords {
		if srcRecords[i] != dstRecords[i] {
			t.Errorf("record %d: %+v vs %+v", i, srcRecords[i], dstRecords[i])
		}
	}
}

func TestIsDirNonEmpty(t *testing.T) {
	dir := t.TempDir()
	if nonEmpty, err := IsDirNonEmpty(dir); err != nil || nonEmpty {
		t.Errorf("empty dir: %v, %v", nonEmpty, err)
	}
	if nonEmpty, err := IsDirNonEmpty(dir + "/missing"); err != nil || nonEmpty {
		t.Errorf("missing dir: %v, %v", nonEmpty, err)
	}
	_ = setupTestDBAt(t, dir)
	if nonEmpty, err := IsDirNonEmpty(dir); err != nil || !nonEmpty {
		t.Errorf("populated dir: %v, %v", nonEmpty, err)
	}
}

func setupTestDBAt(t *testing.T, dir string) *DB {
	t.Helper()
	db, err := Open(dir + "/mood.db")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
