// Package templates manages canned chat replies. Live-stream sellers answer
// the same questions over and over; templates let them keep one reply per
// fixed category (greeting, price query, order form and so on) and paste it
// into chat.
package templates
