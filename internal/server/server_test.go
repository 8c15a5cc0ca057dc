package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lakay-labs/tiraj/internal/analysis"
	"github.com/lakay-labs/tiraj/internal/catalog"
	"github.com/lakay-labs/tiraj/internal/draw"
)

// staticSource serves a fixed record set by exact date.
type staticSource struct {
	records []draw.Record
}

func (s *staticSource) DrawsOn(table string, dates []time.Time) ([]draw.Record, error) {
	var out []draw.Record
	for _, rec := range s.records {
		for _, d := range dates {
			if rec.Date.Equal(d) {
				out = append(out, rec)
			}
		}
	}
	return out, nil
}

func testRouter(t *testing.T, records ...draw.Record) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := catalog.New([]catalog.PatternSet{
		{
			Category: "Test", SubCategory: "A",
			Days: []catalog.DayNumbers{
				{Day: draw.Mardi, Numbers: []int{10}},
				{Day: draw.Mercredi, Numbers: []int{20}},
			},
		},
	})
	engine := analysis.New(cat, &staticSource{records: records})
	return New(engine).Router()
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /health = %d, want 200", w.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	rec := draw.Record{
		Date:   time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC),
		Fields: []draw.Field{draw.Num(10), {}, {}, {}, {}, {}, {}},
	}
	r := testRouter(t, rec)

	w := postJSON(t, r, "/analyze",
		`{"reference_date":"2024-01-10","numbers":["10"],"table":"matin"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /analyze = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Raw []analysis.Hit        `json:"raw_results"`
		Log []analysis.LogEntry   `json:"detailed_log"`
		Fmt []analysis.FormattedResult `json:"formatted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.Raw) != 1 || resp.Raw[0].Number != 10 {
		t.Errorf("raw_results = %+v, want one hit on 10", resp.Raw)
	}
	if len(resp.Log) != 1 || len(resp.Log[0].Weeks) != analysis.DefaultWeeksBack {
		t.Errorf("detailed_log = %+v, want one entry with %d weeks", resp.Log, analysis.DefaultWeeksBack)
	}
	if len(resp.Fmt) != 1 || resp.Fmt[0].Display != "10" {
		t.Errorf("formatted = %+v, want one entry displaying 10", resp.Fmt)
	}
}

func TestAnalyzeEndpoint_BadDate(t *testing.T) {
	r := testRouter(t)
	w := postJSON(t, r, "/analyze",
		`{"reference_date":"01/10/2024","numbers":["10"],"table":"matin"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date = %d, want 400", w.Code)
	}
}

func TestAnalyzeEndpoint_MissingBody(t *testing.T) {
	r := testRouter(t)
	w := postJSON(t, r, "/analyze", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty body = %d, want 400", w.Code)
	}
}

func TestVerifyEndpoint(t *testing.T) {
	rec := draw.Record{
		Date:   time.Date(2024, time.January, 9, 0, 0, 0, 0, time.UTC),
		Fields: []draw.Field{draw.Num(70), {}, {}, {}, {}, {}, {}},
	}
	r := testRouter(t, rec)

	w := postJSON(t, r, "/verify",
		`{"reference_date":"2024-01-10","numbers":["7"],"table":"matin","day":"mardi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("POST /verify = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Hits []analysis.VerificationHit `json:"hits"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if len(resp.Hits) != 1 || resp.Hits[0].Number != 70 {
		t.Errorf("hits = %+v, want one reverse hit on 70", resp.Hits)
	}
}

func TestVerifyEndpoint_BadDay(t *testing.T) {
	r := testRouter(t)
	w := postJSON(t, r, "/verify",
		`{"reference_date":"2024-01-10","numbers":["7"],"table":"matin","day":"tuesday"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad day = %d, want 400", w.Code)
	}
}

func TestCatalogLookupEndpoint(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GET /catalog/10 = %d", w.Code)
	}
	var resp struct {
		Number int `json:"number"`
		Sets   []struct {
			Category string `json:"category"`
		} `json:"sets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Number != 10 || len(resp.Sets) != 1 || resp.Sets[0].Category != "Test" {
		t.Errorf("response = %+v, want number 10 in set Test", resp)
	}
}

func TestCatalogLookupEndpoint_BadNumber(t *testing.T) {
	r := testRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/catalog/123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /catalog/123 = %d, want 400", w.Code)
	}
}
