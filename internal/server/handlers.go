package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/matzehuels/tilestitch/pkg/buildinfo"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
	"github.com/matzehuels/tilestitch/pkg/observability"
	"github.com/matzehuels/tilestitch/pkg/pipeline"
	"github.com/matzehuels/tilestitch/pkg/render"
)

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type placedTile struct {
	Tile     int  `json:"tile"`
	Rotation int  `json:"rotation"`
	Mirror   bool `json:"mirror"`
}

type solveResponse struct {
	RunID         string         `json:"run_id"`
	Cached        bool           `json:"cached"`
	CornerProduct int            `json:"corner_product"`
	Rows          int            `json:"rows"`
	Cols          int            `json:"cols"`
	TileSize      int            `json:"tile_size"`
	Corners       []int          `json:"corners"`
	Placement     [][]placedTile `json:"placement"`
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Get().Version})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	input, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := s.runner.Solve(r.Context(), pipeline.Options{Input: input, Source: RequestIDFrom(r.Context())})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out := solveResponse{
		RunID:         res.RunID,
		Cached:        res.CacheInfo.SolutionHit,
		CornerProduct: res.CornerProduct,
		Rows:          res.Placement.Rows,
		Cols:          res.Placement.Cols,
		TileSize:      res.Tiles.Size(),
		Corners:       res.Corners,
		Placement:     make([][]placedTile, res.Placement.Rows),
	}
	for i := range out.Placement {
		out.Placement[i] = make([]placedTile, res.Placement.Cols)
		for j := range out.Placement[i] {
			cell := res.Placement.At(i, j)
			out.Placement[i][j] = placedTile{
				Tile:     cell.TileID,
				Rotation: cell.Orientation.Rotation,
				Mirror:   cell.Orientation.Mirror,
			}
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Source:   RequestIDFrom(r.Context()),
		Formats:  []string{render.FormatPNG},
		Detailed: q.Get("detailed") == "1" || q.Get("detailed") == "true",
	}
	if f := q.Get("format"); f != "" {
		opts.Formats = []string{f}
	}
	if sc := q.Get("scale"); sc != "" {
		n, err := strconv.Atoi(sc)
		if err != nil {
			s.writeError(w, r, tserr.New(tserr.ErrCodeInvalidInput, "scale must be an integer, got %q", sc))
			return
		}
		opts.Scale = n
	}
	if err := opts.ValidateForRender(); err != nil {
		s.writeError(w, r, err)
		return
	}

	input, err := s.readBody(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Input = input

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	format := opts.Formats[0]
	w.Header().Set("Content-Type", render.ContentType(format))
	w.Header().Set("X-Run-Id", res.RunID)
	if res.CacheInfo.RenderHit {
		w.Header().Set("X-Cache", "hit")
	} else {
		w.Header().Set("X-Cache", "miss")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) (string, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", tserr.Wrap(ErrCodeTooLarge, err, "request body exceeds %d bytes", tooLarge.Limit)
		}
		return "", tserr.Wrap(tserr.ErrCodeInvalidInput, err, "read request body")
	}
	if len(data) == 0 {
		return "", tserr.New(tserr.ErrCodeInvalidInput, "request body is empty")
	}
	return string(data), nil
}

// ErrCodeTooLarge marks a request body over the size limit.
const ErrCodeTooLarge tserr.Code = "BODY_TOO_LARGE"

// statusFor maps an error code to an HTTP status.
func statusFor(code tserr.Code) int {
	switch code {
	case tserr.ErrCodeInvalidInput, tserr.ErrCodeInvalidTile, tserr.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case tserr.ErrCodeAmbiguousMatch, tserr.ErrCodeAssembly:
		return http.StatusUnprocessableEntity
	case ErrCodeTooLarge:
		return http.StatusRequestEntityTooLarge
	case tserr.ErrCodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := tserr.GetCode(err)
	if code == "" {
		code = tserr.ErrCodeInternal
	}
	status := statusFor(code)
	observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)

	msg := tserr.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestIDFrom(r.Context()), "err", err)
		msg = "internal error"
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: msg, RequestID: RequestIDFrom(r.Context())})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
