// Package main hosts the unitshift CLI entrypoint and command graph.
//
// The Cobra-based command tree lists categories and units, converts single
// values, and repopulates every unit of a category from one typed value, the
// same flow a form front end drives on each keystroke. It centralizes
// configuration resolution, logger setup, and history recording so
// subcommands can focus on presentation.
//
// Keep this package lean: conversion rules live in internal/units and
// internal/converter; commands here only parse arguments and render results.
package main
