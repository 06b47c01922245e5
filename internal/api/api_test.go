package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alexiusacademia/gosteel/internal/classify"
	"github.com/alexiusacademia/gosteel/internal/compression"
	"github.com/alexiusacademia/gosteel/internal/diag"
	"github.com/alexiusacademia/gosteel/internal/flexure"
	"github.com/alexiusacademia/gosteel/internal/profile"
	"github.com/cpmech/gosl/chk"
)

const girder = `{"designation": "PG400", "plates": {"d": 400, "bf": 200, "tf": 15, "tw": 10}}`

const cirsoc = "Tipo;PERFIL;Ag;d;bf;tf;tw;hw;Ix;Sx;rx;Zx;Iy;Sy;ry;Zy;J;Cw;bf/2tf;hw/tw;x;eo\n" +
	"IPE;200;28,5;200;100;8,5;5,6;159;1943;194;8,26;221;142;28,5;2,24;44,6;6,98;12990;5,88;28,4;-;-\n" +
	"UPN;200;32,2;200;75;11,5;8,5;151;1910;191;7,70;228;148;27,0;2,14;-;11,9;9070;-;17,8;2,01;3,94\n"

func server(tst *testing.T) *Server {
	t, err := profile.ReadCSV(strings.NewReader(cirsoc), profile.CIRSOC)
	if err != nil {
		tst.Fatalf("%v", err)
	}
	return &Server{Table: t, Solver: compression.DefaultSolverConfig()}
}

func post(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func Test_engines01(tst *testing.T) {

	chk.PrintTitle("engines01")

	h := server(tst).Router()

	rec := post(h, "/api/classify", `{"section": `+girder+`, "fy": 250}`)
	chk.Int(tst, "classify", rec.Code, http.StatusOK)
	var c classify.Classification
	if err := json.Unmarshal(rec.Body.Bytes(), &c); err != nil {
		tst.Fatalf("%v", err)
	}
	if len(c.Elements) == 0 {
		tst.Errorf("no element checks returned")
	}

	rec = post(h, "/api/compression", `{"section": `+girder+`, "fy": 250, "lengths": {"lx": 4000, "ly": 4000}}`)
	chk.Int(tst, "compression", rec.Code, http.StatusOK)
	var axial struct {
		Mode string  `json:"mode"`
		Pd   float64 `json:"pd"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &axial); err != nil {
		tst.Fatalf("%v", err)
	}
	if axial.Pd <= 0 || axial.Mode == "" {
		tst.Errorf("compression response: %s", rec.Body.String())
	}

	rec = post(h, "/api/flexure", `{"profile": {"designation": "200", "type": "IPE"}, "fy": 235, "lb": 3000, "axis": "major"}`)
	chk.Int(tst, "flexure", rec.Code, http.StatusOK)
	var fx flexure.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &fx); err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, fx.Designation, "IPE 200")
	chk.Float64(tst, "φ", 1e-12, fx.Md, 0.9*fx.Mn)
}

func Test_interaction01(tst *testing.T) {

	chk.PrintTitle("interaction01")

	h := server(tst).Router()
	member := `"section": ` + girder + `, "fy": 250, "lengths": {"lx": 4000, "ly": 4000}, "lb": 4000, "cb": 1`

	rec := post(h, "/api/interaction", `{`+member+`, "demand": {"n": 200, "mx": 50}}`)
	chk.Int(tst, "check", rec.Code, http.StatusOK)
	var res InteractionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		tst.Fatalf("%v", err)
	}
	if res.Check == nil || res.Sweep != nil {
		tst.Fatalf("single check expected: %s", rec.Body.String())
	}
	if res.Check.Ratio <= 0 {
		tst.Errorf("ratio %g", res.Check.Ratio)
	}

	rec = post(h, "/api/interaction", `{`+member+`, "combinations": "gravity",
		"effects": {"dead": {"n": 100, "mx": 10}, "live": {"n": 150, "mx": 20}}}`)
	chk.Int(tst, "sweep", rec.Code, http.StatusOK)
	res = InteractionResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		tst.Fatalf("%v", err)
	}
	if res.Sweep == nil {
		tst.Fatalf("sweep expected")
	}
	chk.Int(tst, "combinations", len(res.Sweep.Results), 2)
	chk.String(tst, res.Sweep.Governing.Combination.ID, "2")

	rec = post(h, "/api/interaction", `{`+member+`}`)
	chk.Int(tst, "nothing to check", rec.Code, http.StatusUnprocessableEntity)

	rec = post(h, "/api/report/pdf", `{`+member+`, "demand": {"n": 200, "mx": 50}, "header": {"project": "P1"}}`)
	chk.Int(tst, "report", rec.Code, http.StatusOK)
	chk.String(tst, rec.Header().Get("Content-Type"), "application/pdf")
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		tst.Errorf("not a PDF")
	}
}

func Test_profiles01(tst *testing.T) {

	chk.PrintTitle("profiles01")

	s := server(tst)
	h := s.Router()

	rec := get(h, "/api/profiles/200")
	chk.Int(tst, "ambiguous", rec.Code, http.StatusOK)
	var pr ProfileResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &pr); err != nil {
		tst.Fatalf("%v", err)
	}
	chk.String(tst, pr.Section.TypeTag, "IPE")
	chk.Int(tst, "W-AMBIG", pr.Warnings.Count(diag.AmbiguousLookup), 1)

	rec = get(h, "/api/profiles/200?type=UPN")
	chk.Int(tst, "tagged", rec.Code, http.StatusOK)
	pr = ProfileResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &pr); err != nil {
		tst.Fatalf("%v", err)
	}
	chk.Float64(tst, "xo", 1e-9, pr.Section.Xo.Or(0), 19.3)

	chk.Int(tst, "unknown", get(h, "/api/profiles/999").Code, http.StatusNotFound)
	s.Table.Strict = true
	chk.Int(tst, "strict", get(h, "/api/profiles/200").Code, http.StatusConflict)

	none := (&Server{}).Router()
	chk.Int(tst, "no table", get(none, "/api/profiles/200").Code, http.StatusServiceUnavailable)
	rec = post(none, "/api/flexure", `{"profile": {"designation": "200"}, "fy": 250}`)
	chk.Int(tst, "profile without table", rec.Code, http.StatusUnprocessableEntity)
}

func Test_errors01(tst *testing.T) {

	chk.PrintTitle("errors01")

	h := server(tst).Router()
	chk.Int(tst, "bad json", post(h, "/api/flexure", `{"fy": `).Code, http.StatusBadRequest)
	chk.Int(tst, "unknown field", post(h, "/api/flexure", `{"fy": 250, "colour": "red"}`).Code, http.StatusBadRequest)
	chk.Int(tst, "no fy", post(h, "/api/flexure", `{"section": `+girder+`}`).Code, http.StatusUnprocessableEntity)
	chk.Int(tst, "bad axis", post(h, "/api/flexure", `{"section": `+girder+`, "fy": 250, "axis": "z"}`).Code,
		http.StatusUnprocessableEntity)
	chk.Int(tst, "incomplete", post(h, "/api/flexure", `{"section": {"designation": "X", "family": "tee"}, "fy": 250}`).Code,
		http.StatusUnprocessableEntity)
	rec := get(h, "/api/flexure")
	chk.Int(tst, "method", rec.Code, http.StatusMethodNotAllowed)
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		tst.Fatalf("%v", err)
	}
	if body["error"] == "" {
		tst.Errorf("405 without an error message")
	}
	chk.Int(tst, "post on profiles", post(h, "/api/profiles/200", `{}`).Code, http.StatusMethodNotAllowed)
	chk.Int(tst, "unknown path", get(h, "/api/nothing").Code, http.StatusNotFound)
}

func Test_limiter01(tst *testing.T) {

	chk.PrintTitle("limiter01")

	s := server(tst)
	s.Limiter = NewIPRateLimiter(0.001, 2)
	h := s.Router()

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		req.RemoteAddr = "10.0.0.7:" + []string{"4001", "4002", "4003"}[i]
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	chk.Int(tst, "first", codes[0], http.StatusOK)
	chk.Int(tst, "second", codes[1], http.StatusOK)
	chk.Int(tst, "third", codes[2], http.StatusTooManyRequests)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.RemoteAddr = "10.0.0.8:4001"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	chk.Int(tst, "other client", rec.Code, http.StatusOK)
}

func Test_sweep01(tst *testing.T) {

	chk.PrintTitle("sweep01")

	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	l := NewIPRateLimiter(1, 1)
	l.now = func() time.Time { return clock }

	l.limiter("10.0.0.1")
	clock = clock.Add(2 * time.Minute)
	l.limiter("10.0.0.2")
	chk.Int(tst, "both fresh", l.Sweep(5*time.Minute), 2)

	clock = clock.Add(2 * time.Minute)
	chk.Int(tst, "first idle", l.Sweep(3*time.Minute), 1)
	if _, ok := l.ips["10.0.0.2"]; !ok {
		tst.Errorf("recent client dropped")
	}

	// a swept client starts with a full bucket
	if !l.limiter("10.0.0.1").Allow() {
		tst.Errorf("new bucket must allow a request")
	}
	chk.Int(tst, "back", len(l.ips), 2)
}
