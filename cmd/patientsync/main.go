package main

import "patient-sync-service/cmd/patientsync/cmd"

func main() {
	cmd.Execute()
}
