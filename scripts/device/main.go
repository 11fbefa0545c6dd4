// Fake device: posts randomized readings to a running server. Useful for
// watching the live view update.
package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"
)

func main() {
	baseURL := flag.String("url", "http://localhost:3000", "server base URL")
	secret := flag.String("secret", "", "shared ingestion secret (EMONITOR_API_KEY)")
	interval := flag.Duration("interval", 5*time.Second, "delay between readings")
	count := flag.Int("count", 0, "number of readings to send (0 = forever)")
	flag.Parse()

	for sent := 0; *count == 0 || sent < *count; sent++ {
		form := url.Values{
			"EMONITOR_API_KEY": {*secret},
			"temperature":      {fmt.Sprintf("%.1f", 18+rand.Float64()*8)},
			"co2":              {fmt.Sprintf("%.0f", 380+rand.Float64()*400)},
			"tvoc":             {fmt.Sprintf("%.0f", rand.Float64()*100)},
			"lightLevel":       {fmt.Sprintf("%.0f", rand.Float64()*800)},
		}

		resp, err := http.Post(*baseURL+"/add-sensor-data",
			"application/x-www-form-urlencoded",
			strings.NewReader(form.Encode()))
		if err != nil {
			panic(err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		fmt.Printf("POST /add-sensor-data status=%s body=%s\n", resp.Status, string(body))

		time.Sleep(*interval)
	}
}
