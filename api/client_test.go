package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ukeSJTU/termoj/api"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*api.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.NewClient(srv.URL, func() string { return "sekrit" })
	return client, srv
}

func TestErrorClassification(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		status int
		body   string
		want   api.ErrorKind
	}{
		{name: "401 is unauthorized", status: http.StatusUnauthorized, body: `{"message":"token expired"}`, want: api.KindUnauthorized},
		{name: "403 is unauthorized", status: http.StatusForbidden, body: `{}`, want: api.KindUnauthorized},
		{name: "404 is not found", status: http.StatusNotFound, body: ``, want: api.KindNotFound},
		{name: "500 is transient", status: http.StatusInternalServerError, body: ``, want: api.KindTransient},
		{name: "502 is transient", status: http.StatusBadGateway, body: ``, want: api.KindTransient},
		{name: "429 is transient", status: http.StatusTooManyRequests, body: ``, want: api.KindTransient},
		{name: "408 is transient", status: http.StatusRequestTimeout, body: ``, want: api.KindTransient},
		{name: "422 is malformed", status: http.StatusUnprocessableEntity, body: `{"message":"bad language"}`, want: api.KindMalformed},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			_, err := client.Profile(context.Background())
			if err == nil {
				t.Fatalf("expected an error for status %d", tt.status)
			}
			if got := api.KindOf(err); got != tt.want {
				t.Fatalf("expected kind %v, got %v (%v)", tt.want, got, err)
			}
		})
	}
}

func TestServerMessagePreferred(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	})
	_, err := client.Profile(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "token expired" {
		t.Fatalf("expected the server's message, got %q", err.Error())
	}
}

func TestUndecodableBodyIsMalformed(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>this is not json</html>`))
	})
	_, err := client.Profile(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := api.KindOf(err); got != api.KindMalformed {
		t.Fatalf("expected kind %v, got %v (%v)", api.KindMalformed, got, err)
	}
}

func TestTimeoutIsTransient(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	client.HTTPClient = &http.Client{Timeout: 20 * time.Millisecond}
	_, err := client.Profile(context.Background())
	if err == nil {
		t.Fatal("expected a timeout error")
	}
	if got := api.KindOf(err); got != api.KindTransient {
		t.Fatalf("expected kind %v, got %v (%v)", api.KindTransient, got, err)
	}
}

func TestConnectionErrorIsTransient(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := api.NewClient(srv.URL, nil)
	_, err := client.Profile(context.Background())
	if err == nil {
		t.Fatal("expected a connection error")
	}
	if got := api.KindOf(err); got != api.KindTransient {
		t.Fatalf("expected kind %v, got %v (%v)", api.KindTransient, got, err)
	}
}

func TestCancelledContextIsNotAnAPIError(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	})
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err := client.Profile(ctx)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRequestHeaders(t *testing.T) {
	t.Parallel()
	var gotAuth, gotAccept, gotAgent string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte(`{"username":"alice"}`))
	})
	if _, err := client.Profile(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer sekrit" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Fatalf("expected json accept header, got %q", gotAccept)
	}
	if gotAgent == "" {
		t.Fatal("expected a user agent")
	}
}

func TestNoTokenMeansNoAuthHeader(t *testing.T) {
	t.Parallel()
	var gotAuth string
	sawAuth := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		sawAuth = true
		w.Write([]byte(`{"username":"anon"}`))
	}))
	defer srv.Close()
	client := api.NewClient(srv.URL, func() string { return "" })
	if _, err := client.Profile(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !sawAuth || gotAuth != "" {
		t.Fatalf("expected no authorization header, got %q", gotAuth)
	}
}

func TestSubmitEncodesForm(t *testing.T) {
	t.Parallel()
	var path, contentType, lang, code, public string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		contentType = r.Header.Get("Content-Type")
		r.ParseForm()
		lang = r.PostFormValue("language")
		code = r.PostFormValue("code")
		public = r.PostFormValue("public")
		w.Write([]byte(`{"id":1234}`))
	})
	id, err := client.Submit(context.Background(), 42, "cpp", "int main() {}", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 1234 {
		t.Fatalf("expected submission id 1234, got %d", id)
	}
	if path != "/problem/42/submit" {
		t.Fatalf("expected submit path, got %q", path)
	}
	if contentType != "application/x-www-form-urlencoded" {
		t.Fatalf("expected form content type, got %q", contentType)
	}
	if lang != "cpp" || code != "int main() {}" || public != "false" {
		t.Fatalf("form fields wrong: language=%q code=%q public=%q", lang, code, public)
	}
}

func TestCoursesPagination(t *testing.T) {
	t.Parallel()
	var query string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		w.Write([]byte(`{"courses":[{"id":1,"name":"Data Structures"}],"next":"https://judge.example/api/v1/course/?cursor=77"}`))
	})
	courses, next, err := client.Courses(context.Background(), api.CourseFilter{Keyword: "data", Term: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(courses) != 1 || courses[0].Name != "Data Structures" {
		t.Fatalf("unexpected courses: %+v", courses)
	}
	if next != "77" {
		t.Fatalf("expected next cursor 77, got %q", next)
	}
	if query != "keyword=data&term=3" {
		t.Fatalf("unexpected query: %q", query)
	}
}

func TestJoinAcceptsNoContent(t *testing.T) {
	t.Parallel()
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	if err := client.JoinCourse(context.Background(), 9); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
