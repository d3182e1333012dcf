package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drivethru/internal/catalog"

	"github.com/gin-gonic/gin"
)

type FakeClient struct {
	reply    string
	err      error
	received []Message
}

func (f *FakeClient) Complete(ctx context.Context, messages []Message) (string, error) {
	f.received = messages
	return f.reply, f.err
}

func newTestService(client *FakeClient) *Service {
	repo := catalog.NewInMemoryRepository(catalog.DefaultMenu())
	return NewService(client, catalog.NewService(repo))
}

func TestAskInjectsMenuContext(t *testing.T) {
	client := &FakeClient{reply: "Burger kami Rp25,000."}
	service := newTestService(client)

	reply, err := service.Ask(context.Background(), "Berapa harga burger?")
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if reply != "Burger kami Rp25,000." {
		t.Errorf("unexpected reply: %s", reply)
	}

	if len(client.received) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(client.received))
	}
	if client.received[0].Role != "system" {
		t.Errorf("expected system message first, got %s", client.received[0].Role)
	}
	if !strings.Contains(client.received[1].Content, "Burger") {
		t.Errorf("expected menu context to list the burger, got %s", client.received[1].Content)
	}
	if client.received[2].Content != "Berapa harga burger?" {
		t.Errorf("expected question last, got %s", client.received[2].Content)
	}
}

func TestAskRejectsEmptyQuestion(t *testing.T) {
	service := newTestService(&FakeClient{})

	if _, err := service.Ask(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty question")
	}
}

func TestAskHandlerUpstreamFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	client := &FakeClient{err: errors.New("upstream down")}
	handler := NewHandler(newTestService(client))

	r := gin.New()
	r.POST("/assistant", handler.Ask)

	body, _ := json.Marshal(gin.H{"question": "ada promo?"})
	req := httptest.NewRequest(http.MethodPost, "/assistant", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d", w.Code)
	}
}

func TestBuildMenuContextIncludesDescriptions(t *testing.T) {
	items := []catalog.Item{
		{Name: "burger", DisplayName: "Burger", Price: 25000, Description: "daging sapi"},
		{Name: "cola", DisplayName: "Cola", Price: 10000},
	}

	out := BuildMenuContext(items)

	if !strings.Contains(out, "Burger: Rp25000 (daging sapi)") {
		t.Errorf("expected burger line with description, got:\n%s", out)
	}
	if !strings.Contains(out, "Cola: Rp10000\n") {
		t.Errorf("expected cola line without description, got:\n%s", out)
	}
}
