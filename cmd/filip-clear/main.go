// Command filip-clear round-trips a random message through a FiLIP
// instance entirely in the clear, the cheap sanity check that a
// parameter set's filter and whitening are correctly wired before ever
// touching FHE (spec.md §8, "clear-world round trip").
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/princess-elisabeth/FiLIP/cipher"
	"github.com/princess-elisabeth/FiLIP/encrypter"
	"github.com/princess-elisabeth/FiLIP/params"
	"github.com/princess-elisabeth/FiLIP/prng"
	"github.com/princess-elisabeth/FiLIP/symmetrickey"
)

func main() {
	name := flag.String("params", "FiLIP-1216", "parameter set name")
	nbBits := flag.Int("nb-bits", 256, "number of message bits to round-trip")
	flag.Parse()

	p, err := params.Lookup(*name)
	if err != nil {
		log.Fatal(err)
	}
	if err := p.Validate(); err != nil {
		log.Fatal(err)
	}

	seed, err := prng.NewRandomSeed()
	if err != nil {
		log.Fatal(err)
	}
	setupGen, err := prng.NewFromSeed(seed ^ 0x5145f1711216)
	if err != nil {
		log.Fatal(err)
	}
	keyGen, err := prng.NewFromSeed(seed)
	if err != nil {
		log.Fatal(err)
	}

	key := encrypter.GenerateClearKey(keyGen, p.Kappa)
	sk, err := symmetrickey.New(key, p.N, seed)
	if err != nil {
		log.Fatal(err)
	}

	f := p.Filter(setupGen)
	enc := encrypter.New(sk, f, cipher.ClearBitFactory{})
	dec, err := symmetrickey.New(key, p.N, seed)
	if err != nil {
		log.Fatal(err)
	}
	decEnc := encrypter.New(dec, f, cipher.ClearBitFactory{})

	msgGen, err := prng.NewRandomSeed()
	if err != nil {
		log.Fatal(err)
	}
	mg, err := prng.NewFromSeed(msgGen)
	if err != nil {
		log.Fatal(err)
	}
	msg := make([]bool, *nbBits)
	for i := range msg {
		msg[i] = mg.Bit()
	}

	ctxt := enc.Encrypt(msg)
	out := decEnc.Decrypt(ctxt)

	for i := range msg {
		if msg[i] != out[i] {
			log.Fatalf("%s: round trip mismatch at bit %d", p.Name, i)
		}
	}
	fmt.Printf("%s: %d bits round-tripped successfully\n", p.Name, *nbBits)
}
