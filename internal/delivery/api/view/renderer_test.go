package view

import (
	"bytes"
	"testing"

	"sampleapp/internal/usecase"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Weather(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	summary := "Balmy"
	var buf bytes.Buffer
	err = r.Render(&buf, WeatherPage, []usecase.WeatherForecastDTO{
		{ID: "a", Date: civil.Date{Year: 2024, Month: 6, Day: 1}, TemperatureC: 25, TemperatureF: 76, Summary: &summary},
		{ID: "b", Date: civil.Date{Year: 2024, Month: 6, Day: 2}, TemperatureC: -3, TemperatureF: 27},
	}, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<title>Weather forecast</title>")
	assert.Contains(t, out, "2024-06-01")
	assert.Contains(t, out, "<td>76</td>")
	assert.Contains(t, out, "Balmy")
	assert.Contains(t, out, "<td>-3</td>")
}

func TestRenderer_Attendees(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, AttendeesPage, []usecase.AttendeeDTO{
		{ID: 1, AccountName: "alice", IsAttended: true},
		{ID: 2, AccountName: "<bob>"},
	}, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `action="/attendees/1/attendance"`)
	assert.Contains(t, out, `value="false"`)
	assert.Contains(t, out, `value="true"`)
	assert.Contains(t, out, "&lt;bob&gt;")
	assert.NotContains(t, out, "<bob>")
}

func TestRenderer_Empty(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, AttendeesPage, []usecase.AttendeeDTO{}, nil))
	assert.Contains(t, buf.String(), "No attendees.")

	assert.Error(t, r.Render(&buf, "missing.html", nil, nil))
}
