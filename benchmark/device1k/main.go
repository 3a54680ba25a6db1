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

var maxDevices int = 2000
var httpHostPort string = "127.0.0.1:1080"

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

var authToken string

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

	authToken = obtainToken()

	fmt.Printf("benchmark account registered\n")

	var startTime time.Time
	var usedTime time.Duration

	deviceIDs := make([]uint, maxDevices)

	startTime = time.Now()
	wg := sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			deviceIDs[i] = createDevice(i)
			fmt.Printf("\rcreated device %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rcreated %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices)/usedTime.Seconds(),
	)

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxDevices; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(deviceIDs[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v devices: used time=%v seconds, throughput=%v action/second\n",
		maxDevices, usedTime.Seconds(), float64(maxDevices*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func postJSON(url string, payload any) *http.Response {
	jsonData, _ := json.Marshal(payload)
	req, _ := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		panic(err)
	}
	return resp
}

func obtainToken() string {
	email := uuid.NewString() + "@benchmark.local"
	password := uuid.NewString()

	resp := postJSON(fmt.Sprintf("http://%s/api/user/create", httpHostPort), map[string]string{
		"email":    email,
		"password": password,
		"name":     "benchmark",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		log.Fatal("failed to register benchmark account: ", resp.Status)
	}

	resp = postJSON(fmt.Sprintf("http://%s/api/user/token", httpHostPort), map[string]string{
		"email":    email,
		"password": password,
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("failed to obtain benchmark token: ", resp.Status)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		log.Fatal("failed to decode token response: ", err)
	}
	return body.Token
}

func createDevice(index int) uint {
	resp := postJSON(fmt.Sprintf("http://%s/api/devices", httpHostPort), map[string]string{
		"device_name":    fmt.Sprintf("bench-%v", index),
		"device_purpose": "benchmark traffic counter",
	})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		panic(fmt.Sprintf("failed to create device %v: %v", index, resp.Status))
	}

	var body struct {
		ID uint `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		panic(err)
	}
	return body.ID
}

func doAction(deviceID uint) {
	actions := []func(){
		genPostValueAction(deviceID),
		genGetLatestValueAction(deviceID),
		genListValuesAction(deviceID),
	}
	actionNames := []string{
		"PostValue",
		"GetLatestValue",
		"ListValues",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for device %v", actionNames[index], deviceID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostValueAction(deviceID uint) func() {
	return func() {
		resp := postJSON(fmt.Sprintf("http://%s/api/devices/%v/values", httpHostPort, deviceID), map[string]int{
			"value":            1 + int(rnd.Int31n(5)),
			"car_count":        int(rnd.Int31n(200)),
			"motorcycle_count": int(rnd.Int31n(200)),
			"smalltruck_count": int(rnd.Int31n(50)),
			"bigvehicle_count": int(rnd.Int31n(20)),
		})
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated {
			fmt.Printf("\nresponse status code != 201: %v\n", resp)
		}
	}
}

func genGetLatestValueAction(deviceID uint) func() {
	return func() {
		// the public read path, polled anonymously
		resp, err := http.Get(fmt.Sprintf("http://%s/api/devices/%v/latest-value", httpHostPort, deviceID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genListValuesAction(deviceID uint) func() {
	return func() {
		req, _ := http.NewRequest("GET", fmt.Sprintf("http://%s/api/devices/%v/values", httpHostPort, deviceID), nil)
		req.Header.Set("Authorization", "Bearer "+authToken)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}
