package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/api/handlers"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/interpret"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/config"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/logger"
)

// One socket, one inputs frame per slider move, one result frame back.
func TestLiveSession_ComputeRoundTrip(t *testing.T) {
	log := logger.New(&config.Config{LogLevel: "error"})
	lh := NewLiveHandler(roi.NewEngine(interpret.Default()), log)

	srv := httptest.NewServer(http.HandlerFunc(lh.Handle))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	require.NoError(t, conn.WriteJSON(roi.DefaultInputs()))

	var frame handlers.CalculateResponse
	require.NoError(t, conn.ReadJSON(&frame))

	assert.Equal(t, 18500.0, frame.Metrics.TotalInitialInvestment)
	assert.InDelta(t, 7971.891891891892, frame.Metrics.ROIPercentage, 1e-9)
	require.NotNil(t, frame.Metrics.PaybackPeriodYears)
	assert.Contains(t, frame.Interpretation, "strong financial return")
}

// A malformed frame answers with an error frame and the session keeps
// serving subsequent frames.
func TestLiveSession_SurvivesMalformedFrame(t *testing.T) {
	log := logger.New(&config.Config{LogLevel: "error"})
	lh := NewLiveHandler(roi.NewEngine(interpret.Default()), log)

	srv := httptest.NewServer(http.HandlerFunc(lh.Handle))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{bad")))

	var errFrame map[string]string
	require.NoError(t, conn.ReadJSON(&errFrame))
	assert.Equal(t, "invalid inputs frame", errFrame["error"])

	inputs := roi.DefaultInputs()
	inputs.Benefits = roi.QuantifiableBenefits{}
	require.NoError(t, conn.WriteJSON(inputs))

	var frame handlers.CalculateResponse
	require.NoError(t, conn.ReadJSON(&frame))
	assert.True(t, frame.Metrics.PaybackIndefinite)
	assert.Nil(t, frame.Metrics.PaybackPeriodYears)
}
