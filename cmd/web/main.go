package main

import (
	"fmt"
	"html/template"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomz197/shooter/internal/config"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

var page = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>shooter</title></head>
<body>
<h1>shooter</h1>
<p>A side-scrolling terminal shooter. Connect with:</p>
<pre>ssh -t -p {{.Port}} {{.Host}}</pre>
<p>Keys: w/s or arrows to move, space to fire, tab to switch weapon, q to quit.</p>
<p>Current gameplay values: <a href="/tuning">tuning.yaml</a></p>
</body>
</html>
`))

func main() {
	logger := config.NewLogger(os.Stderr, "shooter-web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "your-server.com")
	sshPort := config.GetEnv("SSH_PORT", "2222")

	tuning, err := config.LoadTuningFromEnv()
	if err != nil {
		logger.Fatal("failed to load tuning", "err", err)
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := struct{ Host, Port string }{sshHost, sshPort}
		if err := page.Execute(w, data); err != nil {
			logger.Error("render page", "err", err)
		}
	})
	http.HandleFunc("/tuning", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		if err := yaml.NewEncoder(w).Encode(tuning); err != nil {
			logger.Error("encode tuning", "err", err)
		}
	})

	addr := fmt.Sprintf("%s:%s", host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
