package main

import (
	"chat-broker/observability"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	MonitoringURL string        `envconfig:"BROKER_MONITORING_URL" default:"http://localhost:8081/api/monitoring"`
	Timeout       time.Duration `envconfig:"BROKER_INSPECT_TIMEOUT" default:"5s"`
	Colours       bool          `envconfig:"BROKER_INSPECT_COLOURS" default:"true"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	stats, err := fetch(cfg)
	if err != nil {
		log.Fatal("Error while reading monitoring: ", err)
	}

	header := fmt.Sprintf("  ====== %d rooms, %d sessions, %d published, %d dropped ======",
		len(stats.Rooms), stats.Sessions, stats.Published, stats.Dropped)
	if cfg.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Room ID", "Display", "Members", "Home"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, room := range stats.Rooms {
		home := ""
		if room.ID == stats.HomeRoom {
			home = "*"
		}
		table.Append([]string{room.ID, room.Display, strconv.Itoa(room.Members), home})
	}
	table.Render()
}

func fetch(cfg Config) (observability.MonitoringStats, error) {
	var stats observability.MonitoringStats
	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := client.Get(cfg.MonitoringURL)
	if err != nil {
		return stats, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return stats, fmt.Errorf("unexpected status %s", resp.Status)
	}
	err = json.NewDecoder(resp.Body).Decode(&stats)
	return stats, err
}
