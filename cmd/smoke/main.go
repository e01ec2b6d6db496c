// Smoke harness: drives the HTTP API of a locally running server end to end.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const baseURL = "http://localhost:8080"

func main() {
	// Give a freshly started server a moment to come up.
	time.Sleep(2 * time.Second)

	fmt.Println("Starting smoke test...")

	workspaceID := fmt.Sprintf("smoke-%d", time.Now().Unix())
	base := fmt.Sprintf("%s/workspaces/%s", baseURL, workspaceID)

	// 1. Bootstrap
	fmt.Println("1. Bootstrapping schema...")
	if _, ok := request("POST", base+"/schema/bootstrap", nil, http.StatusOK); !ok {
		fail("bootstrap")
	}
	fmt.Println("PASSED: bootstrap")

	// 2. Create two entries
	fmt.Println("2. Creating entries...")
	root, ok := request("POST", base+"/entries", map[string]interface{}{
		"title":    "Deploy runbook",
		"body":     "Run migrations before rollout.",
		"category": "how_to",
		"tags":     []string{"deploy"},
	}, http.StatusCreated)
	if !ok {
		fail("create root entry")
	}
	child, ok := request("POST", base+"/entries", map[string]interface{}{
		"title":    "Migration ordering",
		"body":     "Schema changes ship first.",
		"category": "concept",
	}, http.StatusCreated)
	if !ok {
		fail("create child entry")
	}
	rootID, _ := root["id"].(string)
	childID, _ := child["id"].(string)
	fmt.Println("PASSED: create entries")

	// 3. Link them
	fmt.Println("3. Linking entries...")
	url := fmt.Sprintf("%s/entries/%s/links", base, rootID)
	if _, ok := request("POST", url, map[string]string{"to_id": childID, "type": "depends_on"}, http.StatusNoContent); !ok {
		fail("link entries")
	}
	fmt.Println("PASSED: link")

	// 4. Fetch with relationships
	fmt.Println("4. Fetching entry...")
	fetched, ok := request("GET", fmt.Sprintf("%s/entries/%s", base, rootID), nil, http.StatusOK)
	if !ok {
		fail("get entry")
	}
	rels, _ := fetched["relationships"].([]interface{})
	if len(rels) != 1 {
		fail(fmt.Sprintf("expected 1 relationship, got %d", len(rels)))
	}
	fmt.Println("PASSED: get with relationships")

	// 5. Traverse
	fmt.Println("5. Traversing graph...")
	traversed, ok := request("POST", base+"/graph/traverse", map[string]interface{}{
		"start_id": rootID,
		"depth":    100, // silently capped server-side
	}, http.StatusOK)
	if !ok {
		fail("traverse")
	}
	entries, _ := traversed["entries"].([]interface{})
	if len(entries) != 1 {
		fail(fmt.Sprintf("expected 1 reachable entry, got %d", len(entries)))
	}
	fmt.Println("PASSED: traverse")

	fmt.Println("Smoke test passed.")
}

func request(method, url string, payload interface{}, wantStatus int) (map[string]interface{}, bool) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("marshal error: %v\n", err)
			return nil, false
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		fmt.Printf("request error: %v\n", err)
		return nil, false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("http error: %v\n", err)
		return nil, false
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		fmt.Printf("unexpected status %d (want %d): %s\n", resp.StatusCode, wantStatus, raw)
		return nil, false
	}

	result := map[string]interface{}{}
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &result)
	}
	return result, true
}

func fail(step string) {
	fmt.Printf("FAILED: %s\n", step)
	os.Exit(1)
}
