package web

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ambientworks/go-officeanim/pkg/scene"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	scn, err := scene.LoadEmbedded("office")
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	return NewServer("0", scn, 30)
}

func TestHandleScene(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.app.Test(httptest.NewRequest("GET", "/api/scene", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Name     string `json:"name"`
		Entities []struct {
			Name      string       `json:"name"`
			Label     string       `json:"label"`
			Waypoints [][3]float64 `json:"waypoints"`
		} `json:"entities"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if body.Name != "office" {
		t.Errorf("scene name = %q", body.Name)
	}
	if len(body.Entities) != 3 {
		t.Fatalf("got %d entities, want 3", len(body.Entities))
	}
	for _, e := range body.Entities {
		if len(e.Waypoints) < 2 {
			t.Errorf("entity %q has %d waypoints in scene view", e.Name, len(e.Waypoints))
		}
	}
}

func TestHandleFrame_DeterministicAtFixedElapsed(t *testing.T) {
	s := newTestServer(t)

	fetch := func() FrameBatch {
		t.Helper()
		resp, err := s.app.Test(httptest.NewRequest("GET", "/api/frame?elapsed=9.5", nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != 200 {
			t.Fatalf("status = %d, want 200", resp.StatusCode)
		}
		var batch FrameBatch
		if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		return batch
	}

	a := fetch()
	b := fetch()

	if a.Elapsed != 9.5 {
		t.Errorf("elapsed = %v, want 9.5", a.Elapsed)
	}
	if len(a.Frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(a.Frames))
	}
	for i := range a.Frames {
		if a.Frames[i] != b.Frames[i] {
			t.Errorf("frame %d differs between identical queries", i)
		}
	}
}

func TestHandleFrame_RejectsBadElapsed(t *testing.T) {
	s := newTestServer(t)

	for _, q := range []string{"abc", "-3"} {
		resp, err := s.app.Test(httptest.NewRequest("GET", "/api/frame?elapsed="+q, nil))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if resp.StatusCode != 400 {
			t.Errorf("elapsed=%q: status = %d, want 400", q, resp.StatusCode)
		}
	}
}

func TestHandleRequest_IssuesTicket(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/request",
		strings.NewReader(`{"request": "find me leads in fintech"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 202 {
		t.Fatalf("status = %d, want 202", resp.StatusCode)
	}

	var body struct {
		Ticket string `json:"ticket"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Ticket == "" || body.Status != "accepted" {
		t.Errorf("body = %+v", body)
	}
}

func TestHandleRequest_RejectsEmpty(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest("POST", "/api/request", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if resp.StatusCode != 400 {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}
