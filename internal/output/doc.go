// Package output delivers generated passwords to their destinations.
//
// Every sink receives each password as a *secure.Buffer it does not own.
// A sink that needs the content past Write keeps its own Clone and wipes
// it in Close.
package output
