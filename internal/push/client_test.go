package push_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hirzany/pam-backend/internal/push"
)

func TestSend_DeliversMessage(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message_id":"msg-1"}`))
	}))
	defer srv.Close()

	client := push.NewClient(srv.URL, "push-server-key")

	messageID, err := client.Send(context.Background(), "device-token", "Payment Successful", "Your payment has been received.")

	assert.NoError(t, err)
	assert.Equal(t, "msg-1", messageID)
	assert.Equal(t, "key=push-server-key", gotAuth)
	assert.Equal(t, "device-token", gotBody["to"])
	assert.Equal(t, "high", gotBody["priority"])

	notification, ok := gotBody["notification"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Payment Successful", notification["title"])
	assert.Equal(t, "Your payment has been received.", notification["body"])
}

func TestSend_ServiceRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid registration token"}`))
	}))
	defer srv.Close()

	client := push.NewClient(srv.URL, "push-server-key")

	messageID, err := client.Send(context.Background(), "bad-token", "Title", "Body")

	assert.Error(t, err)
	assert.Empty(t, messageID)
	assert.Contains(t, err.Error(), "invalid registration token")
}

func TestSend_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := push.NewClient(srv.URL, "push-server-key")

	_, err := client.Send(context.Background(), "device-token", "Title", "Body")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
