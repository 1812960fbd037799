package main

var RetryDelays = retryDelays

var LoadProfile = loadProfile
