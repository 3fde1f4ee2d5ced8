package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sporttracker/sporttracker/internal/application"
)

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func printKV(rows [][2]string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", row[0], row[1])
	}
	_ = w.Flush()
}

func printTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Println("no results")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}

func formatMaybeID(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}

func printSportTypes(items []application.DatasetSportType) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		subTypes := make([]string, 0, len(item.SubTypes))
		for _, sub := range item.SubTypes {
			subTypes = append(subTypes, sub.Name)
		}
		equipment := make([]string, 0, len(item.Equipment))
		for _, eq := range item.Equipment {
			equipment = append(equipment, eq.Name)
		}
		rows = append(rows, []string{
			strconv.FormatInt(item.ID, 10),
			item.Name,
			item.Color,
			strings.Join(subTypes, ","),
			strings.Join(equipment, ","),
		})
	}
	printTable([]string{"ID", "NAME", "COLOR", "SUB_TYPES", "EQUIPMENT"}, rows)
}

func printExercises(items []application.DatasetExercise) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatInt(item.ID, 10),
			formatTime(item.DateTime),
			strconv.FormatInt(item.SportTypeID, 10),
			strconv.FormatInt(item.SportSubTypeID, 10),
			formatMaybeID(item.EquipmentID),
			item.Intensity,
			strconv.FormatFloat(item.Distance, 'f', 1, 64),
			strconv.FormatFloat(item.AvgSpeed, 'f', 1, 64),
			formatDuration(item.Duration),
		})
	}
	printTable([]string{"ID", "DATE", "SPORT_TYPE", "SUB_TYPE", "EQUIPMENT", "INTENSITY", "KM", "KM/H", "DURATION"}, rows)
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
}

func printNotes(items []application.DatasetNote) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatInt(item.ID, 10),
			formatTime(item.DateTime),
			item.Comment,
		})
	}
	printTable([]string{"ID", "DATE", "COMMENT"}, rows)
}

func printWeights(items []application.DatasetWeight) {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			strconv.FormatInt(item.ID, 10),
			formatTime(item.DateTime),
			strconv.FormatFloat(item.Value, 'f', 1, 64),
			item.Comment,
		})
	}
	printTable([]string{"ID", "DATE", "KG", "COMMENT"}, rows)
}
