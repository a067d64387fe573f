package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/arabdict/arabdict"
	"github.com/arabdict/arabdict/internal/tablecache"
)

// ---- JSON response types ------------------------------------------------

type formsResponse struct {
	Forms      []string `json:"forms"`
	Buckwalter []string `json:"buckwalter"`
}

type analysisResponse struct {
	Form    string                        `json:"form"`
	Results []arabdict.RootAnalysisResult `json:"results"`
}

type contextsResponse struct {
	Root     arabdict.VerbRoot       `json:"root"`
	Class    string                  `json:"class"`
	Contexts []arabdict.Stem1Context `json:"contexts"`
}

type dialectsResponse struct {
	Dialects []arabdict.Info `json:"dialects"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toFormsResponse(s arabdict.EquivalenceSet) formsResponse {
	out := formsResponse{Forms: s.Strings()}
	for _, w := range s.Words() {
		out.Buckwalter = append(out.Buckwalter, w.Buckwalter())
	}
	return out
}

func writeJSON(log *zap.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("encode response", zap.Error(err))
	}
}

func writeError(log *zap.Logger, w http.ResponseWriter, status int, msg string) {
	writeJSON(log, w, status, errorResponse{Error: msg})
}

// errStatus maps domain errors to 400 and everything else to 500.
func errStatus(err error) int {
	for _, target := range []error{
		arabdict.ErrInvalidRootRadicals,
		arabdict.ErrInvalidStem1Context,
		arabdict.ErrUnsupportedParameterCombination,
		arabdict.ErrMalformedWord,
		arabdict.ErrUnknownDialect,
		errBadRequest,
	} {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func writeErr(log *zap.Logger, w http.ResponseWriter, err error) {
	status := errStatus(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	}
	writeError(log, w, status, err.Error())
}

var errBadRequest = errors.New("bad request")

func badParam(name, value string, err error) error {
	return fmt.Errorf("%w: parameter %q=%q: %v", errBadRequest, name, value, err)
}

// param returns the value of name or def when it is absent.
func param(q url.Values, name, def string) string {
	if v := q.Get(name); v != "" {
		return v
	}
	return def
}

// verbQuery is the part of a query that selects a verb.
type verbQuery struct {
	dialect arabdict.Dialect
	root    arabdict.VerbRoot
	stem    int
	ctx     *arabdict.Stem1Context
}

func parseVerb(q url.Values) (verbQuery, error) {
	var v verbQuery
	var err error
	if v.dialect, err = arabdict.ParseDialect(param(q, "dialect", string(arabdict.MSA))); err != nil {
		return v, err
	}
	raw := q.Get("root")
	if raw == "" {
		return v, fmt.Errorf("%w: missing 'root' query parameter", errBadRequest)
	}
	if v.root, err = arabdict.ParseRoot(raw); err != nil {
		return v, err
	}
	s := param(q, "stem", "1")
	if v.stem, err = strconv.Atoi(s); err != nil {
		return v, badParam("stem", s, err)
	}
	past, present := q.Get("past"), q.Get("present")
	if past == "" && present == "" {
		return v, nil
	}
	c := &arabdict.Stem1Context{}
	if err := c.PastVowel.UnmarshalText([]byte(past)); err != nil {
		return v, badParam("past", past, err)
	}
	if err := c.PresentVowel.UnmarshalText([]byte(present)); err != nil {
		return v, badParam("present", present, err)
	}
	c.SoundOverride, _ = strconv.ParseBool(q.Get("sound"))
	v.ctx = c
	return v, nil
}

func parseParameters(q url.Values) (arabdict.Dialect, arabdict.Parameters, error) {
	v, err := parseVerb(q)
	if err != nil {
		return "", arabdict.Parameters{}, err
	}
	p := arabdict.Parameters{Root: v.root, Stem: v.stem, Stem1Context: v.ctx}
	fields := []struct {
		name, def string
		parse     func(string) error
	}{
		{"tense", "perfect", func(s string) (err error) { p.Tense, err = arabdict.ParseTense(s); return }},
		{"voice", "active", func(s string) (err error) { p.Voice, err = arabdict.ParseVoice(s); return }},
		{"mood", "indicative", func(s string) (err error) { p.Mood, err = arabdict.ParseMood(s); return }},
		{"person", "3", func(s string) (err error) { p.Person, err = arabdict.ParsePerson(s); return }},
		{"gender", "male", func(s string) (err error) { p.Gender, err = arabdict.ParseGender(s); return }},
		{"numerus", "singular", func(s string) (err error) { p.Numerus, err = arabdict.ParseNumerus(s); return }},
	}
	for _, f := range fields {
		s := param(q, f.name, f.def)
		if err := f.parse(s); err != nil {
			return "", p, badParam(f.name, s, err)
		}
	}
	return v.dialect, p, nil
}

// ---- handlers -----------------------------------------------------------

func handleConjugate(conj *arabdict.Conjugator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, p, err := parseParameters(r.URL.Query())
		if err != nil {
			writeErr(log, w, err)
			return
		}
		forms, err := conj.Conjugate(d, p)
		if err != nil {
			writeErr(log, w, err)
			return
		}
		writeJSON(log, w, http.StatusOK, toFormsResponse(forms))
	}
}

func handleTable(tables *tablecache.Cache, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := parseVerb(r.URL.Query())
		if err != nil {
			writeErr(log, w, err)
			return
		}
		t, err := tables.Table(r.Context(), v.dialect, v.root, v.stem, v.ctx)
		if err != nil {
			writeErr(log, w, err)
			return
		}
		writeJSON(log, w, http.StatusOK, t)
	}
}

func handleParticiple(conj *arabdict.Conjugator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		v, err := parseVerb(q)
		if err != nil {
			writeErr(log, w, err)
			return
		}
		s := param(q, "voice", "active")
		voice, err := arabdict.ParseVoice(s)
		if err != nil {
			writeErr(log, w, badParam("voice", s, err))
			return
		}
		forms, err := conj.ConjugateParticiple(v.dialect, v.root, v.stem, voice, v.ctx)
		if err != nil {
			writeErr(log, w, err)
			return
		}
		writeJSON(log, w, http.StatusOK, toFormsResponse(forms))
	}
}

func handleVerbalNoun(conj *arabdict.Conjugator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := parseVerb(r.URL.Query())
		if err != nil {
			writeErr(log, w, err)
			return
		}
		forms, err := conj.ConjugateVerbalNoun(v.root, v.stem)
		if err != nil {
			writeErr(log, w, err)
			return
		}
		writeJSON(log, w, http.StatusOK, toFormsResponse(forms))
	}
}

func handleAnalyze(conj *arabdict.Conjugator, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		form := q.Get("form")
		if form == "" {
			writeError(log, w, http.StatusBadRequest, "missing 'form' query parameter")
			return
		}
		d, err := arabdict.ParseDialect(param(q, "dialect", string(arabdict.MSA)))
		if err != nil {
			writeErr(log, w, err)
			return
		}
		word, err := arabdict.ParseWord(form)
		if err != nil {
			writeErr(log, w, err)
			return
		}
		res, err := conj.AnalyzeConjugation(r.Context(), d, word)
		if err != nil {
			writeErr(log, w, err)
			return
		}
		status := http.StatusOK
		if len(res) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(log, w, status, analysisResponse{Form: form, Results: arabdict.SortedResults(res)})
	}
}

func handleContexts(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := r.URL.Query().Get("root")
		if raw == "" {
			writeError(log, w, http.StatusBadRequest, "missing 'root' query parameter")
			return
		}
		root, err := arabdict.ParseRoot(raw)
		if err != nil {
			writeErr(log, w, err)
			return
		}
		writeJSON(log, w, http.StatusOK, contextsResponse{
			Root:     root,
			Class:    root.Classify().String(),
			Contexts: root.Stem1ContextChoices(),
		})
	}
}

func handleDialects(log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var out dialectsResponse
		for _, d := range arabdict.Dialects() {
			info, err := arabdict.DialectInfo(d)
			if err != nil {
				writeErr(log, w, err)
				return
			}
			out.Dialects = append(out.Dialects, info)
		}
		writeJSON(log, w, http.StatusOK, out)
	}
}

// ---- middleware ---------------------------------------------------------

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func withLogging(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// newMux registers the API routes.
func newMux(conj *arabdict.Conjugator, tables *tablecache.Cache, log *zap.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/conjugate", handleConjugate(conj, log))
	mux.HandleFunc("GET /api/table", handleTable(tables, log))
	mux.HandleFunc("GET /api/participle", handleParticiple(conj, log))
	mux.HandleFunc("GET /api/verbal-noun", handleVerbalNoun(conj, log))
	mux.HandleFunc("GET /api/analyze", handleAnalyze(conj, log))
	mux.HandleFunc("GET /api/stem1-contexts", handleContexts(log))
	mux.HandleFunc("GET /api/dialects", handleDialects(log))
	return mux
}
