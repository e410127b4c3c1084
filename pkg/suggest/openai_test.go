package suggest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/quirkhelper/sidecar/pkg/suggest"
)

var _ = Describe("OpenAICompleter", func() {
	var (
		server   *httptest.Server
		received map[string]any
		authz    string
		status   int
		body     string
	)

	BeforeEach(func() {
		received = nil
		status = http.StatusOK
		body = `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"See you Saturday!"},"finish_reason":"stop"}]}`

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/chat/completions" {
				http.NotFound(w, r)
				return
			}
			authz = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&received)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(body))
		}))
	})

	AfterEach(func() {
		server.Close()
	})

	newCompleter := func() *suggest.OpenAICompleter {
		return suggest.NewOpenAICompleter(suggest.OpenAIConfig{
			APIKey:    "sk-test",
			BaseURL:   server.URL + "/v1",
			MaxTokens: 120,
		})
	}

	It("sends the system instruction and prompt and returns the first choice", func() {
		reply, err := newCompleter().Complete(context.Background(), "be nice", "Customer: hi")

		Expect(err).NotTo(HaveOccurred())
		Expect(reply).To(Equal("See you Saturday!"))
		Expect(authz).To(Equal("Bearer sk-test"))
		Expect(received["model"]).To(Equal(suggest.DefaultModel))

		msgs, ok := received["messages"].([]any)
		Expect(ok).To(BeTrue())
		Expect(msgs).To(HaveLen(2))
		Expect(msgs[0]).To(HaveKeyWithValue("role", "system"))
		Expect(msgs[0]).To(HaveKeyWithValue("content", "be nice"))
		Expect(msgs[1]).To(HaveKeyWithValue("role", "user"))
	})

	It("reports an empty completion when no choices come back", func() {
		body = `{"id":"c1","object":"chat.completion","choices":[]}`

		_, err := newCompleter().Complete(context.Background(), "s", "p")

		Expect(err).To(MatchError(suggest.ErrEmptyCompletion))
	})

	It("returns an error for upstream failures", func() {
		status = http.StatusUnauthorized
		body = `{"error":{"message":"bad key","type":"invalid_request_error"}}`

		_, err := newCompleter().Complete(context.Background(), "s", "p")

		Expect(err).To(HaveOccurred())
	})
})
