// Command netcalc считает подбор сетки для дверей из командной строки:
//
//	netcalc --catalog data/sizes.json --unit cm --door 210x115:black --door 212x116:brown
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
