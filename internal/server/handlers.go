package server

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"regexviz/regexlib"
)

type compileRequest struct {
	Pattern string `json:"pattern" binding:"required"`
}

type stateJSON struct {
	ID        int  `json:"id"`
	Accepting bool `json:"accepting"`
}

type transitionJSON struct {
	From  int    `json:"from"`
	To    int    `json:"to"`
	Label string `json:"label"` // "ε" for epsilon edges
}

type compileResponse struct {
	ID          string           `json:"id"`
	Pattern     string           `json:"pattern"`
	Start       int              `json:"start"`
	Accept      int              `json:"accept"`
	States      []stateJSON      `json:"states"`
	Transitions []transitionJSON `json:"transitions"`
}

type simulateRequest struct {
	ID    string `json:"id" binding:"required"`
	Input string `json:"input"`
}

type simulateResponse struct {
	ActiveStates []int `json:"active_states"`
	Match        bool  `json:"match"`
}

func (s *Server) handleCompile(c *gin.Context) {
	var req compileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	nfa, err := regexlib.Compile(req.Pattern)
	if err != nil {
		s.log.Info("compile failed", "pattern", req.Pattern, "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	id := s.put(nfa)
	s.log.Info("compiled", "pattern", req.Pattern, "id", id, "states", len(nfa.States))
	c.JSON(http.StatusCreated, graphResponse(id, nfa))
}

func (s *Server) handleSimulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	nfa, err := s.get(req.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
		return
	}

	res := nfa.Simulate(req.Input)
	c.JSON(http.StatusOK, simulateResponse{
		ActiveStates: res.ActiveStates,
		Match:        res.Match,
	})
}

// handleDOT returns the automaton as Graphviz DOT text. With ?input=... the
// states active after consuming the input are highlighted.
func (s *Server) handleDOT(c *gin.Context) {
	nfa, err := s.get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	var buf bytes.Buffer
	if input, ok := c.GetQuery("input"); ok {
		regexlib.ExportDOTActive(&buf, nfa, nfa.Simulate(input).ActiveStates)
	} else {
		regexlib.ExportDOT(&buf, nfa)
	}
	c.Data(http.StatusOK, "text/vnd.graphviz; charset=utf-8", buf.Bytes())
}

func graphResponse(id string, n *regexlib.NFA) compileResponse {
	resp := compileResponse{
		ID:      id,
		Pattern: n.Pattern,
		Start:   n.Start,
		Accept:  n.Accept,
	}
	for _, st := range n.States {
		resp.States = append(resp.States, stateJSON{ID: st.ID, Accepting: st.Accept})
		for _, e := range st.Edges {
			label := "ε"
			if e.Symbol != regexlib.Epsilon {
				label = string(e.Symbol)
			}
			resp.Transitions = append(resp.Transitions, transitionJSON{
				From:  st.ID,
				To:    e.To,
				Label: label,
			})
		}
	}
	return resp
}
