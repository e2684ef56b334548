package constants

// lamp markers
const LampOff = 'O'
const LampYellow = 'Y'
const LampRed = 'R'

// row widths, top to bottom
const SecondsRowWidth = 1
const FiveHourRowWidth = 4
const OneHourRowWidth = 4
const FiveMinuteRowWidth = 11
const OneMinuteRowWidth = 4

// every third lit five-minute lamp marks a quarter hour
const QuarterRun = "YYY"
const QuarterRunMarked = "YYR"

const MaxHours = 24
const MaxMinutes = 59
const MaxSeconds = 59

const DefaultLineSeparator = "\n"
const DefaultWorkers = 4
