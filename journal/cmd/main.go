package main

import (
	"fmt"
	"log"

	"github.com/go-leo/solid/journal"
)

func init() {
	log.SetFlags(0)
	log.SetPrefix("journal: ")
}

func main() {
	j, err := journal.NewJournal("Dear Diary")
	if err != nil {
		log.Fatal(err)
	}
	j.Add("I ate a bug")
	j.Add("I cried today")

	for _, entry := range j.Entries() {
		fmt.Println(entry)
	}

	pm := journal.NewPersistenceManager()
	if err := pm.SaveText(j, "diary.txt"); err != nil {
		log.Fatal(err)
	}
	if err := pm.Save(j, "diary.json"); err != nil {
		log.Fatal(err)
	}
}
