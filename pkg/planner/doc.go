// Package planner is the scheduling and optimization engine of tasktide.
//
// A System owns an arena of Tasks, a Store that keeps them ordered by start
// time and an event queue holding one start and one deadline event per task.
// On top of that it answers three questions: in what order tasks should be
// considered under a key (Sort), which subset maximizes adjusted priority
// under an hour budget (Optimize), and when the next start/deadline events
// fire (Notify).
//
// Interactive concerns (clock, sleeping, yes/no questions) are injected
// through the Clock, Sleeper and Prompter ports so the engine runs without a
// terminal.
package planner
