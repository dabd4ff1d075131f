package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/matzehuels/wordweb/pkg/annotate"
	"github.com/matzehuels/wordweb/pkg/cache"
	wwerrors "github.com/matzehuels/wordweb/pkg/errors"
	"github.com/matzehuels/wordweb/pkg/observability"
	"github.com/matzehuels/wordweb/pkg/triple"
)

// Name is the annotator name used in config and cache keys.
const Name = "openai"

// DefaultModel is used when Options.Model is empty.
const DefaultModel = "gpt-4o-mini"

const systemPrompt = `You extract open information triples from English text.
For every numbered sentence, list the facts it states as subject, relation and object.
Use only words that appear in the sentence, copied exactly, in sentence order.
Leave out articles and punctuation. Return an entry for every sentence, with an empty triples list when it states no fact.`

// Options configures the annotator.
type Options struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client

	Logger *log.Logger
}

// Annotator calls a chat completions endpoint.
type Annotator struct {
	client      openai.Client
	baseURL     string
	model       string
	temperature float64
	logger      *log.Logger
}

var _ annotate.Annotator = (*Annotator)(nil)

// New creates an annotator. An API key is required.
func New(opts Options) (*Annotator, error) {
	if opts.APIKey == "" {
		return nil, wwerrors.New(wwerrors.ErrCodeInvalidConfig, "openai annotator requires an API key")
	}
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
		option.WithMiddleware(httpHooks),
	}
	if opts.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	return &Annotator{
		client:      openai.NewClient(reqOpts...),
		baseURL:     opts.BaseURL,
		model:       model,
		temperature: opts.Temperature,
		logger:      logger,
	}, nil
}

// Name returns "openai".
func (a *Annotator) Name() string { return Name }

// Model returns the configured model.
func (a *Annotator) Model() string { return a.model }

// Fingerprint covers the endpoint and sampling settings.
func (a *Annotator) Fingerprint() string {
	return fmt.Sprintf("base=%s temperature=%g", a.baseURL, a.temperature)
}

// Annotate sends the sentences of text in one request.
func (a *Annotator) Annotate(ctx context.Context, text string) ([]annotate.Sentence, error) {
	sentences := annotate.SplitSentences(text)
	if len(sentences) == 0 {
		return nil, nil
	}

	body := openai.ChatCompletionNewParams{
		Model: openai.ChatModel(a.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(numbered(sentences)),
		},
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:        "triples",
					Description: openai.String("Triples extracted per sentence"),
					Schema:      generateSchema(extractResponse{}),
					Strict:      openai.Bool(true),
				},
			},
		},
		Temperature: openai.Float(a.temperature),
	}

	var content string
	start := time.Now()
	err := cache.RetryWithBackoff(ctx, func() error {
		resp, err := a.client.Chat.Completions.New(ctx, body)
		if err != nil {
			return classify(err)
		}
		if len(resp.Choices) == 0 {
			return wwerrors.New(wwerrors.ErrCodeAnnotation, "model returned no choices")
		}
		content = resp.Choices[0].Message.Content
		a.logger.Debug("completion", "model", a.model, "prompt_tokens", resp.Usage.PromptTokens,
			"completion_tokens", resp.Usage.CompletionTokens, "elapsed", time.Since(start))
		return nil
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, wwerrors.Wrap(wwerrors.ErrCodeAnnotation, err, "openai completion")
	}

	var parsed extractResponse
	if err := unmarshalFlexible(content, &parsed); err != nil {
		return nil, wwerrors.Wrap(wwerrors.ErrCodeAnnotation, err, "decode model output")
	}
	return toSentences(sentences, parsed, a.logger), nil
}

// classify marks transient failures as retryable.
func classify(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500 {
			return cache.Retryable(err)
		}
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return cache.Retryable(fmt.Errorf("%w: %v", cache.ErrNetwork, err))
}

func httpHooks(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
	hooks := observability.HTTP()
	ctx := req.Context()
	hooks.OnRequest(ctx, req.Method, req.URL.Host, req.URL.Path)

	start := time.Now()
	resp, err := next(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, req.URL.Host, req.URL.Path, err)
		return resp, err
	}
	hooks.OnResponse(ctx, req.Method, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))
	return resp, nil
}

func numbered(sentences []string) string {
	var b strings.Builder
	for i, s := range sentences {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

// toSentences attaches the model's triples to the local sentences. Entries
// with an out-of-range number are dropped.
func toSentences(sentences []string, parsed extractResponse, logger *log.Logger) []annotate.Sentence {
	out := make([]annotate.Sentence, len(sentences))
	tokens := make([][]annotate.Token, len(sentences))
	for i, s := range sentences {
		out[i].Text = s
		tokens[i] = annotate.Tokenize(s)
	}

	for _, es := range parsed.Sentences {
		i := es.Number - 1
		if i < 0 || i >= len(sentences) {
			logger.Warn("model referenced unknown sentence", "number", es.Number)
			continue
		}
		for _, et := range es.Triples {
			out[i].Triples = append(out[i].Triples, triple.Triple{
				Subject:  locate(tokens[i], et.Subject),
				Relation: locate(tokens[i], et.Relation),
				Object:   locate(tokens[i], et.Object),
			})
		}
	}
	return out
}

// locate maps model words to "word-index" labels. Each word is matched
// case-insensitively to the next unused occurrence in the sentence, searching
// forward from the previous match first. Words not found get index 0.
func locate(sentence []annotate.Token, phrases []string) []triple.Label {
	var (
		out    []triple.Label
		cursor int
		used   = make(map[int]bool)
	)
	for _, p := range phrases {
		for _, w := range annotate.Tokenize(p) {
			idx := find(sentence, w.Word, cursor, used)
			if idx < 0 {
				idx = find(sentence, w.Word, 0, used)
			}
			if idx < 0 {
				out = append(out, triple.Compose(w.Word, "0"))
				continue
			}
			used[idx] = true
			cursor = idx + 1
			t := sentence[idx]
			out = append(out, triple.Compose(t.Word, strconv.Itoa(t.Index)))
		}
	}
	return out
}

func find(sentence []annotate.Token, word string, from int, used map[int]bool) int {
	for i := from; i < len(sentence); i++ {
		if !used[i] && strings.EqualFold(sentence[i].Word, word) {
			return i
		}
	}
	return -1
}
