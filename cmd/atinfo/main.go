// SPDX-License-Identifier: MIT
//
// Copyright © 2018 Kent Gibson <warthog618@gmail.com>.

// atinfo collects and displays information about a U-blox SARA modem and
// its current configuration.
//
// This serves as an example of how to interact with a modem via ril, as
// well as providing information which may be useful for debugging.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/warthog618/ril/serial"
	"github.com/warthog618/ril/trace"
	"github.com/warthog618/ril/ublox"
)

var version = "undefined"

func main() {
	dev := flag.String("d", "/dev/ttyUSB0", "path to modem device")
	baud := flag.Int("b", 115200, "baud rate")
	timeout := flag.Duration("t", 400*time.Millisecond, "command timeout period")
	verbose := flag.Bool("v", false, "log modem interactions")
	vsn := flag.Bool("version", false, "report version and exit")
	flag.Parse()
	if *vsn {
		fmt.Printf("%s %s\n", os.Args[0], version)
		os.Exit(0)
	}
	sp, err := serial.New(serial.WithPort(*dev), serial.WithBaud(*baud))
	if err != nil {
		log.Println(err)
		return
	}
	defer sp.Close()
	write, read := sp.WriteFunc(), sp.ReadFunc()
	if *verbose {
		tr := trace.New(write, read, log.New(os.Stderr, "", 0))
		write, read = tr.WriteFunc(), tr.ReadFunc()
	}
	m := ublox.New(write, read, 256)
	m.SetTimeout(int(timeout.Milliseconds()))

	report("ATE0", m.ATESet(0))
	reportInt("AT+CMEE=2", 0, m.CMEESet(2))

	v, err := m.CGMRRead()
	reportStr("AT+CGMR", v, err)

	v, err = m.CCIDRead()
	reportStr("AT+CCID", v, err)

	n, err := m.CMGFRead()
	reportInt("AT+CMGF?", n, err)

	n, err = m.CGATTRead()
	reportInt("AT+CGATT?", n, err)

	n, err = m.UDCONF1Read()
	reportInt("AT+UDCONF=1?", n, err)

	cs, err := m.CSCSRead()
	fmt.Println("AT+CSCS?")
	if err != nil {
		fmt.Printf(" %s\n", err)
	} else {
		fmt.Printf(" %d\n", cs)
	}

	c, err := m.CCLKRead()
	fmt.Println("AT+CCLK?")
	if err != nil {
		fmt.Printf(" %s\n", err)
	} else {
		fmt.Printf(" %04d-%02d-%02d %02d:%02d:%02d %+d\n",
			c.Year, c.Month, c.Day, c.Hours, c.Minutes, c.Second, c.Timezone)
	}

	gn, stat, lac, ci, err := m.CGREGRead()
	fmt.Println("AT+CGREG?")
	if err != nil {
		fmt.Printf(" %s\n", err)
	} else {
		fmt.Printf(" n=%d stat=%d lac=%#x ci=%#x\n", gn, stat, lac, ci)
	}
}

func report(label string, err error) {
	fmt.Println(label)
	if err != nil {
		fmt.Printf(" %s\n", err)
	}
}

func reportInt(label string, v int, err error) {
	fmt.Println(label)
	if err != nil {
		fmt.Printf(" %s\n", err)
		return
	}
	fmt.Printf(" %d\n", v)
}

func reportStr(label string, v string, err error) {
	fmt.Println(label)
	if err != nil {
		fmt.Printf(" %s\n", err)
		return
	}
	fmt.Printf(" %s\n", v)
}
