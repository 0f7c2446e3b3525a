package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

var maxMonitors int = 1000
var pingsPerMonitor int = 10
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	projectID := uuid.NewString()
	monitorIDs := make([]string, maxMonitors)

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := range maxMonitors {
		wg.Add(1)
		go func() {
			monitorIDs[i] = createMonitor(projectID, i)
			fmt.Printf("\rcreated monitor %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v monitors: used time=%v seconds, throughput=%v action/second\n",
		maxMonitors, usedTime.Seconds(), float64(maxMonitors)/usedTime.Seconds(),
	)

	totalPings := maxMonitors * pingsPerMonitor

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := range maxMonitors {
		wg.Add(1)
		go func() {
			for range pingsPerMonitor {
				postPing(monitorIDs[i])
			}
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"posted %v pings: used time=%v seconds, throughput=%v action/second\n",
		totalPings, usedTime.Seconds(), float64(totalPings)/usedTime.Seconds(),
	)
}

func createMonitor(projectID string, i int) string {
	payload := map[string]any{
		"name":       fmt.Sprintf("bench-monitor-%d", i),
		"url":        fmt.Sprintf("https://example.com/svc/%d", i),
		"project_id": projectID,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(
		fmt.Sprintf("http://%s/monitors", httpHostPort),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		log.Fatal("Failed to create monitor:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("create monitor returned %v", resp.StatusCode)
	}

	var mon struct {
		ID string `json:"ID"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&mon); err != nil {
		log.Fatal("Failed to decode monitor response:", err)
	}
	return mon.ID
}

func postPing(monitorID string) {
	statusCode := 200
	if rnd.Float64() < 0.05 {
		statusCode = 500
	}

	payload := map[string]any{
		"status_code":      statusCode,
		"response_time_ms": 20 + rnd.Float64()*300,
		"timestamp":        time.Now().UTC().Format(time.RFC3339),
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(
		fmt.Sprintf("http://%s/monitors/%s/pings", httpHostPort, monitorID),
		"application/json",
		bytes.NewReader(body),
	)
	if err != nil {
		log.Fatal("Failed to post ping:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusTooManyRequests {
		log.Fatalf("post ping returned %v", resp.StatusCode)
	}
}
