package larkcard_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willow-ren/larkcard/pkg/larkcard"
)

// envelope mirrors the wire shape for assertions without reaching into
// internal types.
type envelope struct {
	MsgType string `json:"msg_type"`
	Card    struct {
		Config struct {
			WideScreenMode bool `json:"wide_screen_mode"`
		} `json:"config"`
		Header struct {
			Template string `json:"template"`
			Title    struct {
				Content string `json:"content"`
			} `json:"title"`
		} `json:"header"`
		Elements []struct {
			Text struct {
				Content string `json:"content"`
			} `json:"text"`
		} `json:"elements"`
	} `json:"card"`
}

func decode(t *testing.T, payload []byte) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(payload, &e))
	return e
}

func TestNew_RejectsUnknownTheme(t *testing.T) {
	_, err := larkcard.New("https://example.com/hook", larkcard.WithTheme("neon"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neon")
}

func TestPayload_Defaults(t *testing.T) {
	c, err := larkcard.New("https://example.com/hook")
	require.NoError(t, err)

	payload, err := c.Payload([]larkcard.Record{
		{{Key: "name", Value: "GitHub"}, {Key: "url", Value: "https://github.com"}},
	})
	require.NoError(t, err)

	e := decode(t, payload)
	assert.Equal(t, "interactive", e.MsgType)
	assert.Equal(t, "blue", e.Card.Header.Template)
	assert.Equal(t, "System Notice", e.Card.Header.Title.Content)
	assert.True(t, e.Card.Config.WideScreenMode)
	require.Len(t, e.Card.Elements, 2)
	assert.Equal(t, "**Data Report**", e.Card.Elements[0].Text.Content)
	assert.Equal(t, "**#1**\nname: GitHub\nurl: [view details](https://github.com)",
		e.Card.Elements[1].Text.Content)
}

func TestPayload_Options(t *testing.T) {
	c, err := larkcard.New("https://example.com/hook",
		larkcard.WithTitle("Crawl results"),
		larkcard.WithHeaderText("**48 pages**"),
		larkcard.WithTheme("turquoise"),
		larkcard.WithNarrow(),
		larkcard.WithCompact(true),
		larkcard.WithLinkBaseURL("https://ex.com/items/"),
	)
	require.NoError(t, err)

	payload, err := c.Payload([]larkcard.Record{
		{{Key: "url", Value: "/42"}, {Key: "status", Value: "Failed"}},
	})
	require.NoError(t, err)

	e := decode(t, payload)
	assert.Equal(t, "Crawl results", e.Card.Header.Title.Content)
	assert.Equal(t, "turquoise", e.Card.Header.Template)
	assert.False(t, e.Card.Config.WideScreenMode)
	require.Len(t, e.Card.Elements, 2)
	assert.Equal(t, "url: [view details](https://ex.com/items/42) | status: ❌ Failed",
		e.Card.Elements[1].Text.Content)
}

func TestPayload_LinkLabelURLMode(t *testing.T) {
	c, err := larkcard.New("https://example.com/hook",
		larkcard.WithCompact(true),
		larkcard.WithLinkLabelURL(),
	)
	require.NoError(t, err)

	payload, err := c.Payload([]larkcard.Record{
		{{Key: "url", Value: "https://x.com"}},
	})
	require.NoError(t, err)

	e := decode(t, payload)
	assert.Equal(t, "url: [https://x.com](https://x.com)", e.Card.Elements[1].Text.Content)
}

func TestPayload_CustomRendererIsolated(t *testing.T) {
	c, err := larkcard.New("https://example.com/hook",
		larkcard.WithRenderer(func(rec larkcard.Record, index int, all []larkcard.Record) string {
			if index == 0 {
				panic("first record is cursed")
			}
			return fmt.Sprintf("record %d of %d", index+1, len(all))
		}),
	)
	require.NoError(t, err)

	payload, err := c.Payload(make([]larkcard.Record, 2))
	require.NoError(t, err)

	e := decode(t, payload)
	require.Len(t, e.Card.Elements, 3)
	assert.Equal(t, "render error: first record is cursed", e.Card.Elements[1].Text.Content)
	assert.Equal(t, "record 2 of 2", e.Card.Elements[2].Text.Content)
}

func TestSend_PostsEnvelope(t *testing.T) {
	var got envelope
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &got)
		w.Write([]byte(`{"code":0}`))
	}))
	defer srv.Close()

	c, err := larkcard.New(srv.URL, larkcard.WithCompact(true))
	require.NoError(t, err)

	err = c.Send(context.Background(), []larkcard.Record{
		{{Key: "name", Value: "A"}, {Key: "status", Value: "success"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "interactive", got.MsgType)
	require.Len(t, got.Card.Elements, 2)
	assert.Equal(t, "name: A | status: ✅ success", got.Card.Elements[1].Text.Content)
}

func TestSend_EndpointRejectionIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code":19001,"msg":"param invalid"}`))
	}))
	defer srv.Close()

	c, err := larkcard.New(srv.URL)
	require.NoError(t, err)

	err = c.Send(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "code=19001")
}

func TestParseRecords(t *testing.T) {
	records, err := larkcard.ParseRecords(strings.NewReader(`[{"b":"1","a":"2"}]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Len(t, records[0], 2)
	assert.Equal(t, "b", records[0][0].Key)
	assert.Equal(t, "a", records[0][1].Key)

	_, err = larkcard.ParseRecords(strings.NewReader(`{"a":1}`))
	require.Error(t, err)
}
