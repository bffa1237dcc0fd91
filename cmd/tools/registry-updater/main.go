// cmd/tools/registry-updater/main.go
package main

import (
	"flag"
	"fmt"
	"os"

	"rental-workers/pkg/registry"
)

func main() {
	addCmd := flag.NewFlagSet("add", flag.ExitOnError)
	updateCmd := flag.NewFlagSet("update", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	var registryPath string
	for _, fs := range []*flag.FlagSet{addCmd, updateCmd, validateCmd} {
		fs.StringVar(&registryPath, "path", "configs/activity-registry.json", "Path to registry file")
	}

	idAdd := addCmd.String("id", "", "Activity ID (e.g., toggle-favorite)")
	displayName := addCmd.String("displayName", "", "Display Name (e.g., Toggle Favorite)")
	description := addCmd.String("description", "", "Description")
	category := addCmd.String("category", "", "Category (search, profile, favorites)")
	taskType := addCmd.String("taskType", "", "Camunda Task Type (e.g., toggle-favorite)")
	version := addCmd.String("version", "1.0.0", "Version")
	timeout := addCmd.String("timeout", "10s", "Job timeout")
	implStatus := addCmd.String("status", "planned", "Implementation Status (planned, in-progress, completed, verified)")

	idUpdate := updateCmd.String("id", "", "Activity ID to update")
	field := updateCmd.String("field", "", "Field to update (status, version, timeout, retries, ...)")
	value := updateCmd.String("value", "", "New value for the field")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "add":
		_ = addCmd.Parse(os.Args[2:])
		if *idAdd == "" || *displayName == "" || *category == "" || *taskType == "" {
			fmt.Println("Error: id, displayName, category, and taskType are required for add.")
			addCmd.Usage()
			os.Exit(1)
		}
		reg, err := registry.LoadRegistry(registryPath)
		if os.IsNotExist(err) {
			reg, err = &registry.ActivityRegistry{Version: "1.0.0"}, nil
		}
		exitOn(err, "load registry")
		exitOn(reg.Add(registry.Activity{
			ID:                   *idAdd,
			DisplayName:          *displayName,
			Description:          *description,
			Category:             *category,
			Version:              *version,
			TaskType:             *taskType,
			ImplementationStatus: *implStatus,
			InputSchema:          map[string]interface{}{"type": "object"},
			OutputSchema:         map[string]interface{}{"type": "object"},
			ErrorCodes:           []string{},
			Timeout:              *timeout,
			Workflows:            []string{},
			Tags:                 []string{},
		}), "add activity")
		exitOn(registry.SaveRegistry(reg, registryPath), "save registry")
		fmt.Printf("Added activity: %s\n", *idAdd)

	case "update":
		_ = updateCmd.Parse(os.Args[2:])
		if *idUpdate == "" || *field == "" || *value == "" {
			fmt.Println("Error: id, field, and value are required for update.")
			updateCmd.Usage()
			os.Exit(1)
		}
		reg, err := registry.LoadRegistry(registryPath)
		exitOn(err, "load registry")
		exitOn(reg.Update(*idUpdate, *field, *value), "update activity")
		exitOn(registry.SaveRegistry(reg, registryPath), "save registry")
		fmt.Printf("Updated activity %s, field %s to %s\n", *idUpdate, *field, *value)

	case "validate":
		_ = validateCmd.Parse(os.Args[2:])
		reg, err := registry.LoadRegistry(registryPath)
		exitOn(err, "load registry")
		exitOn(reg.Validate(), "validate registry")
		fmt.Printf("Registry validation passed. Found %d activities.\n", len(reg.Activities))

	default:
		help()
	}
}

func exitOn(err error, action string) {
	if err != nil {
		fmt.Printf("Error: %s: %v\n", action, err)
		os.Exit(1)
	}
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  add      Add a new activity to the registry
  update   Update an existing activity's field
  validate Validate the registry file
  help     Show this help message

Examples:
  registry-updater add -id contact-landlord -displayName "Contact Landlord" -category favorites -taskType contact-landlord
  registry-updater update -id contact-landlord -field timeout -value 15s
  registry-updater validate -path configs/activity-registry.json`)
}
