package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"example.com/extracurricular/internal/domain"
	"example.com/extracurricular/internal/roster"
)

func newTestServer() http.Handler {
	repo := roster.NewInMemoryRepository(roster.DefaultCatalog())
	service := domain.NewService(repo, nil)
	mux := http.NewServeMux()
	NewHandler(service).RegisterRoutes(mux)
	return mux
}

func getActivities(t *testing.T, server http.Handler) map[string]ActivityView {
	t.Helper()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var activities map[string]ActivityView
	if err := json.Unmarshal(rr.Body.Bytes(), &activities); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return activities
}

func TestListActivities(t *testing.T) {
	server := newTestServer()

	activities := getActivities(t, server)
	if len(activities) != 9 {
		t.Fatalf("expected 9 activities got %d", len(activities))
	}

	chess, ok := activities["Chess Club"]
	if !ok {
		t.Fatal("expected Chess Club in catalog")
	}
	if chess.MaxParticipants != 12 {
		t.Fatalf("expected max_participants 12 got %d", chess.MaxParticipants)
	}
	want := []string{"michael@mergington.edu", "daniel@mergington.edu"}
	if len(chess.Participants) != len(want) {
		t.Fatalf("expected %d participants got %d", len(want), len(chess.Participants))
	}
	for i, email := range want {
		if chess.Participants[i] != email {
			t.Fatalf("participant %d: expected %s got %s", i, email, chess.Participants[i])
		}
	}
}

func TestSignupSuccess(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "newstudent@mergington.edu") || !strings.Contains(resp.Message, "Chess Club") {
		t.Fatalf("unexpected confirmation message %q", resp.Message)
	}

	activities := getActivities(t, server)
	participants := activities["Chess Club"].Participants
	if len(participants) != 3 {
		t.Fatalf("expected 3 participants got %d", len(participants))
	}
	if participants[2] != "newstudent@mergington.edu" {
		t.Fatalf("expected new student appended, got %v", participants)
	}
}

func TestSignupDuplicate(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup?email=michael@mergington.edu", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if detail := errorDetail(t, rr); !strings.Contains(strings.ToLower(detail), "already signed up") {
		t.Fatalf("unexpected detail %q", detail)
	}

	activities := getActivities(t, server)
	if got := len(activities["Chess Club"].Participants); got != 2 {
		t.Fatalf("roster changed after rejected signup: %d participants", got)
	}
}

func TestSignupUnknownActivity(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/activities/Nonexistent%20Club/signup?email=x@mergington.edu", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
	if detail := errorDetail(t, rr); detail != "Activity not found" {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestSignupMissingEmail(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/activities/Chess%20Club/signup", nil))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rr.Code)
	}
}

func TestSignupCapacityEnforced(t *testing.T) {
	repo := roster.NewInMemoryRepository([]domain.Activity{{
		Name:            "Tiny Club",
		MaxParticipants: 1,
		Participants:    []string{"only@mergington.edu"},
	}})
	mux := http.NewServeMux()
	NewHandler(domain.NewService(repo, nil)).RegisterRoutes(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/activities/Tiny%20Club/signup?email=late@mergington.edu", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if detail := errorDetail(t, rr); !strings.Contains(strings.ToLower(detail), "full") {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestUnregisterSuccess(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/unregister?email=michael@mergington.edu", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	var resp MessageResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !strings.Contains(resp.Message, "Unregistered") || !strings.Contains(resp.Message, "michael@mergington.edu") {
		t.Fatalf("unexpected confirmation message %q", resp.Message)
	}

	activities := getActivities(t, server)
	for _, email := range activities["Chess Club"].Participants {
		if email == "michael@mergington.edu" {
			t.Fatal("expected michael@mergington.edu to be removed")
		}
	}
	if got := len(activities["Chess Club"].Participants); got != 1 {
		t.Fatalf("expected 1 participant got %d", got)
	}
}

func TestUnregisterNotSignedUp(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/unregister?email=notregistered@mergington.edu", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rr.Code)
	}
	if detail := errorDetail(t, rr); !strings.Contains(strings.ToLower(detail), "not signed up") {
		t.Fatalf("unexpected detail %q", detail)
	}
}

func TestUnregisterUnknownActivity(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/activities/Nonexistent%20Club/unregister?email=x@mergington.edu", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestUnregisterMissingEmail(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/activities/Chess%20Club/unregister", nil))
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", rr.Code)
	}
}

func TestSignupCaseSensitiveName(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/activities/chess%20club/signup?email=test@mergington.edu", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rr.Code)
	}
}

func TestSignupURLEncodedNameAndEmail(t *testing.T) {
	server := newTestServer()

	email := "test+special.email@mergington.edu"
	target := "/activities/" + url.PathEscape("Drama Society") + "/signup?email=" + url.QueryEscape(email)
	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, target, nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rr.Code, rr.Body.String())
	}

	activities := getActivities(t, server)
	found := false
	for _, participant := range activities["Drama Society"].Participants {
		if participant == email {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %s on Drama Society roster", email)
	}
}

func TestSignupWrongMethod(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/activities/Chess%20Club/signup?email=x@mergington.edu", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", rr.Code)
	}
}

func TestRootRedirectsToStaticPage(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusTemporaryRedirect {
		t.Fatalf("expected 307 got %d", rr.Code)
	}
	if location := rr.Header().Get("Location"); location != "/static/index.html" {
		t.Fatalf("unexpected redirect location %q", location)
	}
}

func TestHealthz(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rr.Code)
	}
}

func errorDetail(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()

	var payload map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return payload["detail"]
}
