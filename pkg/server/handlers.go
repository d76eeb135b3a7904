package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	apperr "github.com/matzehuels/focusgrid/pkg/errors"
	"github.com/matzehuels/focusgrid/pkg/layoutfile"
	"github.com/matzehuels/focusgrid/pkg/nav"
	"github.com/matzehuels/focusgrid/pkg/render/dot"
	"github.com/matzehuels/focusgrid/pkg/render/gridview"
)

type focusResponse struct {
	FocusID string `json:"focus_id"`
	Layout  string `json:"layout"`
	Point   [2]int `json:"point"`
}

type resultResponse struct {
	Result  string `json:"result"`
	FocusID string `json:"focus_id"`
	Layout  string `json:"layout"`
}

type insertResponse struct {
	FocusID  string `json:"focus_id"`
	Layout   string `json:"layout"`
	Rect     [4]int `json:"rect"`
	Expanded bool   `json:"expanded"`
}

type navigateRequest struct {
	Directive string `json:"directive"`
}

type focusRequest struct {
	FocusID string `json:"focus_id"`
}

func layoutPath(t *nav.Tree, id nav.NodeID) string {
	return strings.Join(t.Path(id), "/")
}

// decode reads a JSON body into v. An empty body leaves v untouched when
// optional is set.
func decode(r *http.Request, v any, optional bool) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return apperr.Wrap(apperr.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (s *Server) handleFocus(w http.ResponseWriter, r *http.Request) {
	var resp focusResponse
	s.nav.View(func(t *nav.Tree, current nav.NodeID) {
		resp.Layout = layoutPath(t, current)
		if p, ok := t.Focus(current); ok {
			resp.Point = [2]int{p.X, p.Y}
		}
		if e, err := t.CurrentElement(current); err == nil {
			resp.FocusID = e.FocusID
		}
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req navigateRequest
	if err := decode(r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	d, err := nav.ParseDirective(req.Directive)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	res, focus, err := s.nav.NavigateFocus(d)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result(res, focus))
}

func (s *Server) handleJump(w http.ResponseWriter, r *http.Request) {
	var req focusRequest
	if err := decode(r, &req, false); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := apperr.ValidateFocusID(req.FocusID); err != nil {
		s.writeError(w, r, err)
		return
	}
	res, focus, err := s.nav.JumpFocus(req.FocusID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result(res, focus))
}

// result renders res. NoNextItem leaves focus where it was, so the current
// focus is reported alongside it.
func result(res nav.Result, focus nav.Focus) resultResponse {
	return resultResponse{
		Result:  res.Kind.String(),
		FocusID: focus.FocusID,
		Layout:  strings.Join(focus.Path, "/"),
	}
}

func (s *Server) lookup(r *http.Request) (nav.NodeID, error) {
	path, err := apperr.ParseLayoutPath(chi.URLParam(r, "*"))
	if err != nil {
		return nav.NoNode, err
	}
	return s.nav.Lookup(path...)
}

func (s *Server) handleInsert(w http.ResponseWriter, r *http.Request) {
	id, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req focusRequest
	if err := decode(r, &req, true); err != nil {
		s.writeError(w, r, err)
		return
	}
	if req.FocusID == "" {
		req.FocusID = s.newID()
	}
	if err := apperr.ValidateFocusID(req.FocusID); err != nil {
		s.writeError(w, r, err)
		return
	}

	ins, err := s.nav.Insert(id, req.FocusID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resp := insertResponse{
		FocusID:  req.FocusID,
		Rect:     [4]int{ins.Rect.XStart, ins.Rect.XEnd, ins.Rect.YStart, ins.Rect.YEnd},
		Expanded: ins.Expanded,
	}
	s.nav.View(func(t *nav.Tree, _ nav.NodeID) { resp.Layout = layoutPath(t, id) })
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	var l *layoutfile.Layout
	s.nav.View(func(t *nav.Tree, _ nav.NodeID) { l = layoutfile.FromTree(t) })
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	id, err := s.lookup(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var out string
	s.nav.View(func(t *nav.Tree, current nav.NodeID) {
		out = gridview.Render(t, id, gridview.Options{HideFocus: id != current})
	})
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, out)
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = "dot"
	}
	if format != "dot" && format != "svg" {
		s.writeError(w, r, apperr.New(apperr.ErrCodeUnsupported, "diagram format %q (want dot or svg)", format))
		return
	}

	opts := dot.Options{Elements: true, Detailed: q.Has("detailed"), Focus: s.nav.FocusID()}
	var src string
	s.nav.View(func(t *nav.Tree, _ nav.NodeID) { src = dot.ToDOT(t, opts) })

	if format == "dot" {
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		io.WriteString(w, src)
		return
	}
	svg, err := dot.RenderSVG(r.Context(), src)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(svg)
}
