package util

import "github.com/gin-gonic/gin"

// The bakery's status scheme is non-standard but fixed; existing clients
// match on both the codes and the exact message texts, so both are kept
// verbatim.
const (
	StatusSuccess    = 200
	StatusNotFound   = 400
	StatusBadLogin   = 410
	StatusLoggedOut  = 420
	StatusEmptyCart  = 430
	StatusOutOfStock = 440
	StatusInfoTaken  = 450
	StatusServerErr  = 500
)

var messages = map[int]string{
	StatusNotFound:   "We could not find that item! Try a diffierent item",
	StatusBadLogin:   "The login was not sucessful. Either the username or password were incorrect",
	StatusLoggedOut:  "You are not logged in. Please login and try again",
	StatusEmptyCart:  "The cart is empty. Please add some items to the cart before purchasing",
	StatusOutOfStock: "There is not enough of items in stock to complete this purchase",
	StatusInfoTaken:  "The submitted username or email is already in use. Please choose something else",
	StatusServerErr:  "There was an error reading info from the server. Try again later",
}

// Fail writes the fixed plain-text message paired with the status code.
func Fail(c *gin.Context, status int) {
	msg, ok := messages[status]
	if !ok {
		status = StatusServerErr
		msg = messages[StatusServerErr]
	}
	c.String(status, msg)
}
