package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"

	"github.com/tradepoint/oms/internal/catalog"
	"github.com/tradepoint/oms/internal/directory"
	"github.com/tradepoint/oms/internal/identity"
	"github.com/tradepoint/oms/internal/order"
	"github.com/tradepoint/oms/pkg/logger"
)

// Console is the menu-driven front end. It owns nothing but the reader;
// all state lives in the services handed to it.
type Console struct {
	in        *bufio.Reader
	out       io.Writer
	identity  *identity.Service
	catalog   *catalog.Service
	directory *directory.Service
	orders    *order.Service
}

// NewConsole creates the console front end.
func NewConsole(in io.Reader, out io.Writer, identitySvc *identity.Service, catalogSvc *catalog.Service, directorySvc *directory.Service, orderSvc *order.Service) *Console {
	return &Console{
		in:        bufio.NewReader(in),
		out:       out,
		identity:  identitySvc,
		catalog:   catalogSvc,
		directory: directorySvc,
		orders:    orderSvc,
	}
}

// Run drives the login loop and the main menu until the user exits.
func (c *Console) Run() {
	c.printf("==============================================\n")
	c.printf("        Order Management System\n")
	c.printf("==============================================\n")

	for {
		if !c.identity.Session.LoggedIn() {
			if !c.loginMenu() {
				c.printf("Goodbye.\n")
				return
			}
			continue
		}
		if !c.mainMenu() {
			c.printf("Goodbye.\n")
			return
		}
	}
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// prompt reads one trimmed line from the user.
func (c *Console) prompt(label string) string {
	c.printf("%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return ""
	}
	return strings.TrimSpace(line)
}

// promptInt reads an integer; malformed input counts as zero.
func (c *Console) promptInt(label string) int {
	return cast.ToInt(c.prompt(label))
}

// promptFloat reads a number; malformed input counts as zero.
func (c *Console) promptFloat(label string) float64 {
	return cast.ToFloat64(c.prompt(label))
}

// promptYesNo reads a y/n answer; anything but y counts as no.
func (c *Console) promptYesNo(label string) bool {
	answer := strings.ToLower(c.prompt(label + " (y/n)"))
	return answer == "y" || answer == "yes"
}

func (c *Console) showError(err error) {
	logger.Error().Err(err).Msg("Operation failed")
	c.printf("Error: %v\n", err)
}
