package safe_test

import (
	"fmt"

	"github.com/safebox-project/safebox-go/pkg/eeprom"
	"github.com/safebox-project/safebox-go/pkg/safe"
)

func Example() {
	store, err := safe.New(eeprom.NewMemory(64), safe.DefaultConfig())
	if err != nil {
		panic(err)
	}

	_ = store.SetCode("2580")
	_ = store.Lock()

	ok, _ := store.Unlock("0000")
	fmt.Println("wrong code:", ok, store.State())

	ok, _ = store.Unlock("2580")
	fmt.Println("right code:", ok, store.State())

	// Output:
	// wrong code: false LOCKED
	// right code: true OPEN
}
