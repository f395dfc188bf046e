package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/course-library-api/internal/api/shared"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRouter mounts the handlers the way the server does.
func newTestRouter(authors *mockAuthorService, courses *mockCourseService, opts Options) http.Handler {
	if opts.Now == nil {
		opts.Now = func() time.Time { return fixedNow }
	}
	ah := NewAuthorHandler(authors, opts, testLogger())
	ch := NewCourseHandler(courses, opts, testLogger())

	r := chi.NewRouter()
	r.Route("/api/authors", func(r chi.Router) {
		r.Get("/", ah.ListAuthors)
		r.Post("/", ah.CreateAuthor)
		r.Get("/{authorId}", ah.GetAuthor)
		r.Route("/{authorId}/courses", func(r chi.Router) {
			r.Get("/", ch.ListCourses)
			r.Post("/", ch.CreateCourse)
			r.Get("/{courseId}", ch.GetCourse)
			r.Put("/{courseId}", ch.ReplaceCourse)
			r.Patch("/{courseId}", ch.PatchCourse)
			r.Delete("/{courseId}", ch.DeleteCourse)
		})
	})
	return r
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, reader))
	return rec
}

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) shared.ValidationProblem {
	t.Helper()
	require.Equal(t, shared.ProblemContentType, rec.Header().Get("Content-Type"))
	var problem shared.ValidationProblem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return problem
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()
	var resp shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
