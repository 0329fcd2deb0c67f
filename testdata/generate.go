package main

import (
	"encoding/csv"
	"encoding/json"
	"log"
	"os"
)

type neo struct {
	ID        string
	PDES      string
	Name      string
	Hazardous string
	Diameter  string
}

type approach struct {
	Des      string
	Time     string
	Distance string
	Velocity string
}

func main() {
	neos := []neo{
		{ID: "a0000433", PDES: "433", Name: "Eros", Hazardous: "N", Diameter: "16.84"},
		{ID: "a0001036", PDES: "1036", Name: "Ganymed", Hazardous: "N", Diameter: "37.675"},
		{ID: "a0099942", PDES: "99942", Name: "Apophis", Hazardous: "Y", Diameter: "0.37"},
		{ID: "a0101955", PDES: "101955", Name: "Bennu", Hazardous: "Y", Diameter: "0.49"},
		{ID: "bK19A00A", PDES: "2019 AA", Name: "", Hazardous: "Y", Diameter: ""},
		{ID: "bK20F03F", PDES: "2020 FF3", Name: "", Hazardous: "", Diameter: ""},
	}
	approaches := []approach{
		{Des: "433", Time: "1900-Dec-27 01:30", Distance: "0.314", Velocity: "5.58"},
		{Des: "99942", Time: "2029-Apr-13 21:46", Distance: "0.000254", Velocity: "7.42"},
		{Des: "101955", Time: "2060-Sep-23 04:51", Distance: "0.00503", Velocity: "6.13"},
		{Des: "2019 AA", Time: "2020-Jan-01 12:30", Distance: "0.00025", Velocity: "22.1"},
		{Des: "433", Time: "2056-Jan-24 08:17", Distance: "0.151", Velocity: "5.93"},
		{Des: "2020 FF3", Time: "2020-Mar-21 17:24", Distance: "0.0364", Velocity: "11.03"},
		{Des: "9999999", Time: "2021-Mar-01 00:00", Distance: "0.3", Velocity: "3.0"},
	}

	if err := writeNEOs("neos.csv", neos); err != nil {
		log.Fatal(err)
	}
	if err := writeApproaches("cad.json", approaches); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated neos.csv with %d objects and cad.json with %d approaches", len(neos), len(approaches))
}

func writeNEOs(path string, neos []neo) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	_ = w.Write([]string{"id", "spkid", "full_name", "pdes", "name", "neo", "pha", "diameter"})
	for _, n := range neos {
		_ = w.Write([]string{n.ID, "", "", n.PDES, n.Name, "Y", n.Hazardous, n.Diameter})
	}
	w.Flush()
	return w.Error()
}

func writeApproaches(path string, approaches []approach) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	doc := struct {
		Fields []string   `json:"fields"`
		Data   [][]string `json:"data"`
	}{
		Fields: []string{"des", "orbit_id", "cd", "dist", "dist_min", "dist_max", "v_rel"},
	}
	for _, a := range approaches {
		doc.Data = append(doc.Data, []string{a.Des, "1", a.Time, a.Distance, a.Distance, a.Distance, a.Velocity})
	}

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
