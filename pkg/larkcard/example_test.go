package larkcard_test

import (
	"fmt"
	"log"

	"github.com/willow-ren/larkcard/pkg/larkcard"
)

func Example() {
	c, err := larkcard.New("https://open.example.com/bot/hook/xxx",
		larkcard.WithTitle("Deploy report"),
		larkcard.WithTheme("green"),
		larkcard.WithCompact(true),
	)
	if err != nil {
		log.Fatal(err)
	}

	// Payload renders without sending; Send posts the same envelope.
	payload, err := c.Payload([]larkcard.Record{
		{{Key: "service", Value: "api"}, {Key: "status", Value: "success"}},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(payload) > 0)
	// Output: true
}
