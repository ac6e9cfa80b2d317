// Package larkcard renders JSON-style record lists into interactive chat
// cards and posts them to a bot webhook.
//
// Quick start:
//
//	c, err := larkcard.New(os.Getenv("LARKCARD_WEBHOOK_URL"),
//	    larkcard.WithTitle("Deploy report"),
//	    larkcard.WithTheme("green"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = c.Send(context.Background(), []larkcard.Record{
//	    {{Key: "name", Value: "api"}, {Key: "status", Value: "success"}},
//	})
//
// Fields named url, link, href, website, or page become hyperlinks; status
// values map to glyphs case-insensitively; everything else renders as plain
// "key: value" lines. A panic inside a custom renderer is confined to the
// record that caused it. Clients hold no mutable state and are safe for
// concurrent use.
package larkcard
