package comicarr

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_ListLibraries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/libraries" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.Header.Get("X-Api-Key") != "secret" {
			t.Errorf("missing api key header")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"libraries": [
			{"id": 1, "name": "Main", "root_path": "/comics", "is_default": true, "is_enabled": true},
			{"id": 2, "name": "Archive", "root_path": "/archive", "is_enabled": false}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	libs, err := c.ListLibraries()
	if err != nil {
		t.Fatalf("ListLibraries failed: %v", err)
	}
	if len(libs) != 2 {
		t.Fatalf("got %d libraries, want 2", len(libs))
	}
	if !libs[0].Default || !libs[0].Enabled {
		t.Errorf("first library = %+v", libs[0])
	}
	if libs[1].Enabled {
		t.Errorf("second library should be disabled")
	}
}

func TestClient_Import(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/imports" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "volume_id": 43113, "title": "Saga", "year": 2012, "folder_name": "Saga (2012)"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	result, err := c.Import(43113, 1)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.ID != 7 || result.Folder != "Saga (2012)" {
		t.Errorf("result = %+v", result)
	}
}

func TestClient_Import_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"message": "volume already imported"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	_, err := c.Import(43113, 1)
	if err == nil {
		t.Fatal("expected error")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %T", err)
	}
	if statusErr.Code != http.StatusConflict {
		t.Errorf("Code = %d, want 409", statusErr.Code)
	}
	if statusErr.Message != "volume already imported" {
		t.Errorf("Message = %q", statusErr.Message)
	}
}

func TestClient_SaveMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/items/12/match" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret")
	if err := c.SaveMatch(12, 43113); err != nil {
		t.Fatalf("SaveMatch failed: %v", err)
	}
}

func TestDefaultLibrary(t *testing.T) {
	tests := []struct {
		name      string
		libraries []Library
		want      int
	}{
		{
			name: "default enabled wins",
			libraries: []Library{
				{ID: 1, Enabled: true},
				{ID: 2, Enabled: true, Default: true},
			},
			want: 1,
		},
		{
			name: "disabled default skipped",
			libraries: []Library{
				{ID: 1, Default: true},
				{ID: 2, Enabled: true},
			},
			want: 1,
		},
		{
			name: "first enabled when no default",
			libraries: []Library{
				{ID: 1},
				{ID: 2, Enabled: true},
				{ID: 3, Enabled: true},
			},
			want: 1,
		},
		{
			name:      "none selectable",
			libraries: []Library{{ID: 1}, {ID: 2}},
			want:      -1,
		},
		{
			name: "empty",
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultLibrary(tt.libraries); got != tt.want {
				t.Errorf("DefaultLibrary() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatusError_Error(t *testing.T) {
	withMsg := &StatusError{Code: 409, Message: "volume already imported"}
	if withMsg.Error() != "server returned 409: volume already imported" {
		t.Errorf("Error() = %q", withMsg.Error())
	}
	bare := &StatusError{Code: 500}
	if bare.Error() != "server returned 500" {
		t.Errorf("Error() = %q", bare.Error())
	}
}
