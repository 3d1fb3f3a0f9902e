package backup

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/hourlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var restoreNow = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"complete", `{"version":"2.0.0","timestamp":"2025-06-01T00:00:00.000Z","data":{}}`, true},
		{"malformed json", `{"version":`, false},
		{"not an object", `[1,2,3]`, false},
		{"missing version", `{"timestamp":"t","data":{}}`, false},
		{"missing timestamp", `{"version":"2.0.0","data":{}}`, false},
		{"missing data", `{"version":"2.0.0","timestamp":"t"}`, false},
		{"null data", `{"version":"2.0.0","timestamp":"t","data":null}`, false},
		{"empty version", `{"version":"","timestamp":"t","data":{}}`, false},
		{"zero timestamp", `{"version":"2.0.0","timestamp":0,"data":{}}`, false},
		{"empty input", ``, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Validate([]byte(tt.raw)))
		})
	}
}

func TestParse_InvalidIsSingleError(t *testing.T) {
	_, err := Parse([]byte(`{"data":{}}`), restoreNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidBackup)
}

func TestNewEnvelope_Shape(t *testing.T) {
	at := time.Date(2025, 6, 30, 18, 4, 5, 123000000, time.UTC)
	env := NewEnvelope(Snapshot{
		Reports: []*domain.Report{{
			ID: "r1", Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), Duration: 90, StudyHours: 2, Observations: "ok",
		}},
		Goal:         domain.MonthlyGoal{MonthlyMinutes: 3000},
		PersonalInfo: domain.PersonalInfo{Name: "Ana", Email: "ana@example.com"},
		WorkDays:     domain.NewWorkDaySet(5, 1),
	}, at)

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "2.0.0", doc["version"])
	assert.Equal(t, "2025-06-30T18:04:05.123Z", doc["timestamp"])

	data := doc["data"].(map[string]any)
	assert.Equal(t, []any{float64(1), float64(5)}, data["workDays"])
	assert.Equal(t, map[string]any{"monthlyHours": float64(3000)}, data["goals"])
	assert.Equal(t, map[string]any{"name": "Ana", "email": "ana@example.com"}, data["personalInfo"])

	reports := data["reports"].([]any)
	require.Len(t, reports, 1)
	assert.Equal(t, "2025-06-03T00:00:00.000Z", reports[0].(map[string]any)["date"])
	assert.Equal(t, float64(2), reports[0].(map[string]any)["studyHours"])
}

func TestNewEnvelope_EmptyCollectionsAreArrays(t *testing.T) {
	raw, err := json.Marshal(NewEnvelope(Snapshot{}, restoreNow))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"reports":[]`)
	assert.Contains(t, string(raw), `"workDays":[]`)
}

func TestParse_CurrentVersion(t *testing.T) {
	raw := `{
		"version": "2.0.0",
		"timestamp": "2025-06-30T18:04:05.123Z",
		"data": {
			"reports": [
				{"id": 7, "date": "2025-06-03T12:00:00.000Z", "duration": 90, "studyHours": 2, "observations": " notes "},
				{"date": "2025-06-04", "duration": "45", "studyHours": null},
				{"duration": -10, "studyHours": "x"}
			],
			"goals": {"monthlyHours": 3000},
			"personalInfo": {"name": " Ana ", "email": null},
			"workDays": [1, 2, 9, "3", 4.5]
		}
	}`

	b, err := Parse([]byte(raw), restoreNow)
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", b.Version)
	assert.Nil(t, b.Legacy)

	p := b.Payload
	require.NotNil(t, p.Goal)
	assert.Equal(t, 3000, p.Goal.MonthlyMinutes)
	require.NotNil(t, p.PersonalInfo)
	assert.Equal(t, domain.PersonalInfo{Name: "Ana"}, *p.PersonalInfo)
	require.NotNil(t, p.WorkDays)
	assert.Equal(t, []int{1, 2}, p.WorkDays.Days())

	require.Len(t, p.Reports, 3)
	assert.True(t, time.Date(2025, 6, 3, 12, 0, 0, 0, time.UTC).Equal(p.Reports[0].Date))
	assert.Equal(t, 90, p.Reports[0].Duration)
	assert.Equal(t, "notes", p.Reports[0].Observations)
	assert.Equal(t, 45, p.Reports[1].Duration)
	assert.Equal(t, 0, p.Reports[1].StudyHours)
	assert.Equal(t, 0, p.Reports[2].Duration)
	assert.Equal(t, restoreNow, p.Reports[2].Date, "missing date falls back to now")
}

func TestParse_SkipsUnusableSections(t *testing.T) {
	raw := `{"version":"2.0.0","timestamp":"t","data":{"goals":{"monthlyHours":"600"},"workDays":"1,2"}}`
	b, err := Parse([]byte(raw), restoreNow)
	require.NoError(t, err)
	assert.Nil(t, b.Payload.Goal, "goal must be a number")
	assert.Nil(t, b.Payload.WorkDays, "work days must be an array")
	assert.Nil(t, b.Payload.PersonalInfo)
	assert.Empty(t, b.Payload.Reports)
}

func TestParse_BadReportDate(t *testing.T) {
	raw := `{"version":"2.0.0","timestamp":"t","data":{"reports":[{"date":"yesterday","duration":10}]}}`
	_, err := Parse([]byte(raw), restoreNow)
	assert.ErrorIs(t, err, ErrInvalidBackup)
}

func TestParse_LegacyVersion(t *testing.T) {
	raw := `{
		"version": "1.0.0",
		"timestamp": "2024-01-01T00:00:00.000Z",
		"data": {
			"@RelatorioApp:reports": [{"date": "2024-01-02T10:00:00.000Z", "duration": 30, "studyHours": 1, "observations": ""}],
			"@RelatorioApp:goals": {"monthlyHours": 0},
			"@RelatorioApp:personalInfo": {"name": "Old Name", "email": "old@example.com"},
			"@RelatorioApp:workDays": [0, 6]
		}
	}`

	b, err := Parse([]byte(raw), restoreNow)
	require.NoError(t, err)
	require.NotNil(t, b.Legacy)
	assert.Empty(t, b.Payload.Reports)

	l := b.Legacy
	require.Len(t, l.Reports, 1)
	assert.Equal(t, 30, l.Reports[0].Duration)
	assert.Nil(t, l.Goal, "a zero legacy goal is not restored")
	assert.Equal(t, "Old Name", l.PersonalInfo.Name)
	assert.Equal(t, []int{0, 6}, l.WorkDays.Days())
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-03T12:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Day())

	got, err = ParseDate("2025-06-03")
	require.NoError(t, err)
	assert.Equal(t, time.Local, got.Location())

	_, err = ParseDate("03/06/2025")
	assert.Error(t, err)
}
