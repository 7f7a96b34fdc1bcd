package respond

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	Status(rec, http.StatusNoContent)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, res.StatusCode)
	}

	body, _ := io.ReadAll(res.Body)
	if len(body) != 0 {
		t.Errorf("expected no body, got %s", body)
	}
}

func TestString(t *testing.T) {
	rec := httptest.NewRecorder()
	String(rec, http.StatusOK, "Hello, World!")

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, res.StatusCode)
	}

	if contentType := res.Header.Get("Content-Type"); contentType != "text/plain;charset=utf-8" {
		t.Errorf("expected content type %s, got %s", "text/plain;charset=utf-8", contentType)
	}

	body, _ := io.ReadAll(res.Body)
	if string(body) != "Hello, World!" {
		t.Errorf("expected body %s, got %s", "Hello, World!", string(body))
	}
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, map[string]string{"hello": "world"})

	res := rec.Result()
	defer res.Body.Close()

	if contentType := res.Header.Get("Content-Type"); contentType != "application/json" {
		t.Errorf("expected content type %s, got %s", "application/json", contentType)
	}

	body, _ := io.ReadAll(res.Body)
	if string(body) != "{\"hello\":\"world\"}\n" {
		t.Errorf("unexpected body %s", body)
	}
}

func TestJSONNil(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, nil)

	body, _ := io.ReadAll(rec.Result().Body)
	if string(body) != "null" {
		t.Errorf("expected body null, got %s", body)
	}
}

func TestData(t *testing.T) {
	rec := httptest.NewRecorder()
	Data(rec, http.StatusOK, "", []byte("<html></html>"))

	res := rec.Result()
	defer res.Body.Close()

	if contentType := res.Header.Get("Content-Type"); contentType == "" {
		t.Error("expected detected content type, got none")
	}

	if contentLength := res.Header.Get("Content-Length"); contentLength != "13" {
		t.Errorf("expected content length 13, got %s", contentLength)
	}
}
