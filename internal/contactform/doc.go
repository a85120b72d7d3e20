// Package contactform is the browser side of the contact pipeline: the form
// state machine, the submitters that deliver a form, and the server-rendered
// contact page.
//
// A Form validates with contact.ValidateForm, so the browser and the
// endpoint share one rule set. Invalid input never reaches the network and
// every failing field is reported at once. A valid form moves to loading,
// hands its raw values to a Submitter, then shows success (fields reset) or
// error (fields kept) for the display window before returning to idle.
//
// The page works without JavaScript as a regular form post. With datastar
// loaded, the fields are bound to signals and POST /contact answers with an
// SSE stream that patches the form on every state change.
package contactform
