// Package app contains the application services that react to rendered
// diagnostic pages: persisting them and sending notifications.
package app

// TopicFaultRendered is published with a domain.FaultRecord argument each
// time a diagnostic page has been rendered for a failed request.
const TopicFaultRendered = "fault:rendered"
